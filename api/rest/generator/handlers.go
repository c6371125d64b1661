package generator

import (
	"context"
	"errors"
	"net/http"

	"codeberg.org/webforge/server/internal/auth"
	httperrors "codeberg.org/webforge/server/internal/errors"
	"codeberg.org/webforge/server/internal/generator"
	"github.com/gin-gonic/gin"
)

// fixed 429 message; the client keys its quota toast off this string
const quotaExceededMessage = "Daily prompt limit reached (2 prompts per day)"

// starter prompts shown on the create page
var examplePrompts = []string{
	"Create a landing page for a fitness app with a modern design, sign-up form, and feature highlights",
	"Build a portfolio website for a photographer with image gallery and contact form",
	"Design a restaurant website with menu, reservation form, and location map",
	"Make a tech blog homepage with article cards, newsletter signup, and dark mode toggle",
	"Create a travel agency website with destination cards, booking form, and testimonials",
	"Build an e-commerce product page with image carousel, pricing, and add to cart button",
	"Design a personal resume website with skills, experience, and downloadable CV",
	"Create a SaaS landing page with pricing table, feature list, and FAQ section",
}

// WebsiteGenerator runs the prompt-to-website pipeline
type WebsiteGenerator interface {
	Generate(ctx context.Context, userID, description string) (*generator.Result, error)
}

// creates a handler for website generation
func GenerateHandler(genService WebsiteGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			httperrors.Unauthorized(c, "")
			return
		}

		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			httperrors.ValidationError(c, err)
			return
		}

		result, err := genService.Generate(c.Request.Context(), userID, req.Prompt)

		if errors.Is(err, generator.ErrQuotaExceeded) {
			httperrors.TooManyRequests(c, quotaExceededMessage)
			return
		}

		if err != nil {
			httperrors.GenerationFailed(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Success:  true,
			HTMLCode: result.HTMLCode,
			CSSCode:  result.CSSCode,
			JSCode:   result.JSCode,
		})
	}
}

// returns the fixed example prompt list
func ExamplesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ExamplesResponse{ExamplePrompts: examplePrompts})
}
