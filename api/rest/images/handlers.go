package images

import (
	"net/http"

	"codeberg.org/webforge/server/internal/errors"
	"codeberg.org/webforge/server/internal/pexels"
	"github.com/gin-gonic/gin"
)

// SearchImagesHandler proxies image searches so the Pexels key never
// reaches the browser. Generated sites call it with a keyword query.
func SearchImagesHandler(pexelsClient *pexels.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		if query == "" {
			errors.BadRequest(c, "missing query parameter", nil)
			return
		}

		results, err := pexelsClient.Search(c.Request.Context(), query)
		if err != nil {
			errors.InternalError(c, "failed to search images", err)
			return
		}

		c.JSON(http.StatusOK, ImagesResponse{Images: results})
	}
}
