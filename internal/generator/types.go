package generator

// Result holds the three source artifacts split out of a single completion.
// Any field may be empty when the model omitted that section.
type Result struct {
	HTMLCode string `json:"htmlCode"`
	CSSCode  string `json:"cssCode"`
	JSCode   string `json:"jsCode"`
}
