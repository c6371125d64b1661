package websites

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

// represents a generated website owned by a user
type Website struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Prompt        string    `json:"prompt"`
	HTMLCode      string    `json:"htmlCode"`
	CSSCode       string    `json:"cssCode"`
	JSCode        string    `json:"jsCode"`
	Thumbnail     string    `json:"thumbnail,omitempty"`
	ShareableLink string    `json:"shareable_link"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateWebsiteRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description,omitempty" binding:"max=2000"`
	Prompt      string `json:"prompt" binding:"required"`
	HTMLCode    string `json:"htmlCode" binding:"required,max=1048576"` // 1MB limit
	CSSCode     string `json:"cssCode" binding:"max=1048576"`
	JSCode      string `json:"jsCode" binding:"max=1048576"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	IsPublic    bool   `json:"is_public"`
}

type UpdateWebsiteRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	HTMLCode    *string `json:"htmlCode,omitempty" binding:"omitempty,max=1048576"`
	CSSCode     *string `json:"cssCode,omitempty" binding:"omitempty,max=1048576"`
	JSCode      *string `json:"jsCode,omitempty" binding:"omitempty,max=1048576"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}
