package images

import (
	"codeberg.org/webforge/server/internal/pexels"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the image search proxy. It is public because
// generated sites fetch images anonymously once shared.
func RegisterRoutes(router *gin.RouterGroup, pexelsClient *pexels.Client) {
	router.GET("/images", SearchImagesHandler(pexelsClient))
}
