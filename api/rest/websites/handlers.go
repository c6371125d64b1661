package websites

import (
	goerrors "errors"
	"net/http"
	"strconv"

	"codeberg.org/webforge/server/api/rest/pagination"
	"codeberg.org/webforge/server/internal/auth"
	"codeberg.org/webforge/server/internal/errors"
	"codeberg.org/webforge/server/webforge/websites"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CreateWebsiteHandler creates a new website for the authenticated user
func CreateWebsiteHandler(websiteRepo *websites.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req websites.CreateWebsiteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		website, err := websiteRepo.Create(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to create website", err)
			return
		}

		c.JSON(http.StatusCreated, website)
	}
}

// ListWebsitesHandler lists the authenticated user's websites, newest first
func ListWebsitesHandler(websiteRepo *websites.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		params := paginationParams(c)

		list, total, err := websiteRepo.List(c.Request.Context(), userID, params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list websites", err)
			return
		}

		if list == nil {
			list = []websites.Website{}
		}

		c.JSON(http.StatusOK, WebsitesListResponse{
			Websites:   list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// SearchWebsitesHandler searches the user's websites by title or description
func SearchWebsitesHandler(websiteRepo *websites.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		query := c.Query("query")
		if query == "" {
			errors.BadRequest(c, "missing query parameter", nil)
			return
		}

		params := paginationParams(c)

		list, total, err := websiteRepo.Search(c.Request.Context(), userID, query, params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to search websites", err)
			return
		}

		if list == nil {
			list = []websites.Website{}
		}

		c.JSON(http.StatusOK, WebsitesListResponse{
			Websites:   list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetWebsiteHandler returns a single website, for its owner or anyone when public
func GetWebsiteHandler(websiteRepo *websites.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		websiteID := c.Param("id")

		website, err := websiteRepo.Get(c.Request.Context(), websiteID)
		if err != nil {
			if goerrors.Is(err, pgx.ErrNoRows) {
				errors.NotFound(c, "website")
				return
			}

			errors.InternalError(c, "failed to get website", err)
			return
		}

		userID, _ := auth.GetUserID(c)

		if website.UserID != userID && !website.IsPublic {
			errors.Forbidden(c, "")
			return
		}

		c.JSON(http.StatusOK, website)
	}
}

// GetSharedWebsiteHandler returns a public website by its shareable link
func GetSharedWebsiteHandler(websiteRepo *websites.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		link := c.Param("link")

		website, err := websiteRepo.GetByShareableLink(c.Request.Context(), link)
		if err != nil {
			// private and missing records look the same from outside
			if goerrors.Is(err, pgx.ErrNoRows) {
				errors.NotFound(c, "website")
				return
			}

			errors.InternalError(c, "failed to get shared website", err)
			return
		}

		c.JSON(http.StatusOK, website)
	}
}

// UpdateWebsiteHandler updates a website owned by the authenticated user
func UpdateWebsiteHandler(websiteRepo *websites.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		websiteID := c.Param("id")

		var req websites.UpdateWebsiteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		website, err := websiteRepo.Update(c.Request.Context(), websiteID, userID, req)
		if err != nil {
			if goerrors.Is(err, pgx.ErrNoRows) {
				errors.NotFound(c, "website")
				return
			}

			errors.InternalError(c, "failed to update website", err)
			return
		}

		c.JSON(http.StatusOK, website)
	}
}

// DeleteWebsiteHandler deletes a website owned by the authenticated user
func DeleteWebsiteHandler(websiteRepo *websites.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		websiteID := c.Param("id")

		if err := websiteRepo.Delete(c.Request.Context(), websiteID, userID); err != nil {
			if goerrors.Is(err, websites.ErrWebsiteNotFound) {
				errors.NotFound(c, "website")
				return
			}

			errors.InternalError(c, "failed to delete website", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "website removed"})
	}
}

func paginationParams(c *gin.Context) pagination.Params {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	return pagination.DefaultParams(limit, offset, defaultPageSize, maxPageSize)
}
