package main

import (
	"codeberg.org/webforge/server/api/rest/auth"
	"codeberg.org/webforge/server/api/rest/generator"
	"codeberg.org/webforge/server/api/rest/health"
	"codeberg.org/webforge/server/api/rest/images"
	"codeberg.org/webforge/server/api/rest/websites"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	publicLimit := PublicRateLimitMiddleware()

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo)
		generator.RegisterRoutes(v1, server.services.Generator)
		websites.RegisterRoutes(v1, server.websiteRepo, publicLimit)

		public := v1.Group("")
		public.Use(publicLimit)
		images.RegisterRoutes(public, server.services.Pexels)
	}
}
