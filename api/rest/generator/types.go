package generator

// Request represents the request body for website generation
type Request struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Response represents a successful website generation
type Response struct {
	Success  bool   `json:"success"`
	HTMLCode string `json:"htmlCode"`
	CSSCode  string `json:"cssCode"`
	JSCode   string `json:"jsCode"`
}

// ExamplesResponse lists starter prompts for the create page
type ExamplesResponse struct {
	ExamplePrompts []string `json:"examplePrompts"`
}
