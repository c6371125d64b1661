package generator

import "fmt"

// system role instruction sent with every generation request; pins the model
// to the three-section output protocol the splitter expects
const systemPrompt = "You are a coding assistant specializing in modern UI/UX design. " +
	"Generate well-structured, responsive, and aesthetically pleasing websites using only HTML, CSS, and vanilla JavaScript. " +
	"Your designs should be minimalist and modern, inspired by ShadCN UI and Magic UI. " +
	"Ensure mobile-friendliness with flexbox, grid, and media queries. " +
	"Implement smooth and interactive elements using subtle animations, transitions, and hover effects. " +
	"Apply well-styled CSS techniques, including gradients, glassmorphism, and neumorphism where needed, to create visually appealing user interfaces. " +
	"Do not add any explanations, introductions, or extra text. Strictly follow this format:\n\n" +
	markerHTML + "\n<Insert HTML here>\n\n" +
	markerCSS + "\n<Insert CSS here>\n\n" +
	markerJS + "\n<Insert JavaScript here>"

const userPromptTemplate = `Generate a fully responsive, modern, and minimal website with a clean UI based on the following description. The design should use smooth animations, a mobile-first approach, and follow current web design trends.

WEBSITE SPECIFICATIONS:
- Use semantic HTML5 elements for better accessibility and SEO
- Implement responsive design with proper breakpoints (mobile: 360px, tablet: 768px, desktop: 1200px+)
- Optimize for performance with modern CSS techniques (Grid/Flexbox)
- Include proper image optimization with responsive sizing

For any images needed (optional), use this pattern in JavaScript:
fetch('/api/v1/images?query=KEYWORD')
  .then(res => res.json())
  .then(data => {
    // data.images contains array of {url, alt, thumbnail} objects
    // Use these URLs to set image sources
  });

USER REQUEST: %s

Please respond with three sections clearly marked:

%s
(full HTML code here)

%s
(full CSS code here)

%s
(JavaScript code here, include image fetching if needed)`

// SystemPrompt returns the fixed system role instruction.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt wraps the user's free-text description in the instruction
// template, interpolated verbatim. Pure; never fails.
func BuildUserPrompt(description string) string {
	return fmt.Sprintf(userPromptTemplate, description, markerHTML, markerCSS, markerJS)
}
