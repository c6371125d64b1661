package generator

import (
	"codeberg.org/webforge/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers website generation routes
func RegisterRoutes(router *gin.RouterGroup, genService WebsiteGenerator) {
	generatorGroup := router.Group("/generator")
	generatorGroup.Use(auth.AuthMiddleware())
	{
		generatorGroup.POST("/generate", GenerateHandler(genService))
		generatorGroup.GET("/examples", ExamplesHandler)
	}
}
