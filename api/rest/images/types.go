package images

import "codeberg.org/webforge/server/internal/pexels"

type ImagesResponse struct {
	Images []pexels.Image `json:"images"`
}
