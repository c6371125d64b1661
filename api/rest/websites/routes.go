package websites

import (
	"codeberg.org/webforge/server/internal/auth"
	"codeberg.org/webforge/server/webforge/websites"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up website routes. The share endpoint is public and
// registered outside the authenticated group so anonymous visitors can open
// shared links; publicLimit throttles it per client IP.
func RegisterRoutes(router *gin.RouterGroup, websiteRepo *websites.Repository, publicLimit gin.HandlerFunc) {
	router.GET("/websites/share/:link", publicLimit, GetSharedWebsiteHandler(websiteRepo))

	// fetching by ID works without a token for public websites
	router.GET("/websites/:id", auth.OptionalAuthMiddleware(), GetWebsiteHandler(websiteRepo))

	authenticated := router.Group("/websites")
	authenticated.Use(auth.AuthMiddleware())
	{
		authenticated.POST("", CreateWebsiteHandler(websiteRepo))
		authenticated.GET("", ListWebsitesHandler(websiteRepo))
		authenticated.GET("/search", SearchWebsitesHandler(websiteRepo))
		authenticated.PUT("/:id", UpdateWebsiteHandler(websiteRepo))
		authenticated.DELETE("/:id", DeleteWebsiteHandler(websiteRepo))
	}
}
