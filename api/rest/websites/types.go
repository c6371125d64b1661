package websites

import (
	"codeberg.org/webforge/server/api/rest/pagination"
	"codeberg.org/webforge/server/webforge/websites"
)

// WebsitesListResponse wraps a list of websites with pagination
type WebsitesListResponse struct {
	Websites   []websites.Website `json:"websites"`
	Pagination pagination.Meta    `json:"pagination"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
