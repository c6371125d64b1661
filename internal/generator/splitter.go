package generator

import (
	"regexp"
	"sort"
	"strings"
)

// Section markers the model is instructed to emit. The prompt in prompt.go
// and the splitter share these as a fixed protocol; change them together.
const (
	markerHTML = "### HTML CODE ###"
	markerCSS  = "### CSS CODE ###"
	markerJS   = "### JAVASCRIPT CODE ###"
)

// marker kinds, in the order sections are returned
const (
	kindHTML = iota
	kindCSS
	kindJS
	kindCount
)

// markdown code fences with an optional language tag; stripped wherever they
// appear inside a section, not only at its boundaries
var fenceRegex = regexp.MustCompile("(?i)```(?:html|css|javascript)?[ \t]*\r?\n?")

type markerMatch struct {
	kind  int
	start int
	end   int
}

// Split parses a raw completion into its three code sections. A section runs
// from just after its marker up to the next occurring marker of any kind, or
// the end of text. Markers are matched case-insensitively. An absent marker
// yields an empty section; Split never fails.
func Split(raw string) Result {
	matches := findMarkers(raw)

	var sections [kindCount]string

	for kind := range sections {
		for i, m := range matches {
			if m.kind != kind {
				continue
			}

			end := len(raw)
			if i+1 < len(matches) {
				end = matches[i+1].start
			}

			sections[kind] = cleanCodeFences(raw[m.end:end])

			break
		}
	}

	return Result{
		HTMLCode: sections[kindHTML],
		CSSCode:  sections[kindCSS],
		JSCode:   sections[kindJS],
	}
}

// locates every marker occurrence, sorted by position
func findMarkers(raw string) []markerMatch {
	lower := strings.ToLower(raw)

	markers := [kindCount]string{
		kindHTML: strings.ToLower(markerHTML),
		kindCSS:  strings.ToLower(markerCSS),
		kindJS:   strings.ToLower(markerJS),
	}

	var matches []markerMatch

	for kind, marker := range markers {
		offset := 0

		for {
			i := strings.Index(lower[offset:], marker)
			if i < 0 {
				break
			}

			start := offset + i
			matches = append(matches, markerMatch{
				kind:  kind,
				start: start,
				end:   start + len(marker),
			})

			offset = start + len(marker)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	return matches
}

// strips markdown fence syntax and surrounding whitespace from a section
func cleanCodeFences(section string) string {
	return strings.TrimSpace(fenceRegex.ReplaceAllString(section, ""))
}
