package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	pexelsSearchURL = "https://api.pexels.com/v1/search"

	// how many photos a single search returns
	defaultPerPage = 8
)

// shared HTTP client for Pexels API calls
var pexelsHTTPClient = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type searchResponse struct {
	Photos []struct {
		Alt          string `json:"alt"`
		Photographer string `json:"photographer"`
		Src          struct {
			Large string `json:"large"`
			Small string `json:"small"`
		} `json:"src"`
	} `json:"photos"`
}

// Image is one search result shaped for generated sites to consume.
type Image struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	Thumbnail string `json:"thumbnail"`
}

type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: pexelsHTTPClient,
		baseURL:    pexelsSearchURL,
	}
}

// Search queries the Pexels photo API and returns images sized for embedding
// in generated sites (large URL plus small thumbnail).
func (c *Client) Search(ctx context.Context, query string) ([]Image, error) {
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}

	reqURL := fmt.Sprintf("%s?query=%s&per_page=%d", c.baseURL, url.QueryEscape(query), defaultPerPage)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096)) //nolint:errcheck
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	images := make([]Image, 0, len(searchResp.Photos))

	for _, photo := range searchResp.Photos {
		alt := photo.Alt
		if alt == "" {
			alt = photo.Photographer
		}

		if alt == "" {
			alt = query
		}

		images = append(images, Image{
			URL:       photo.Src.Large,
			Alt:       alt,
			Thumbnail: photo.Src.Small,
		})
	}

	return images, nil
}
