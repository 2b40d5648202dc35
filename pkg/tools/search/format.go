package search

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const noResults = "No results found for this search type.\n"

// variant renders one entry of a category-specific result list. Every field
// has a placeholder so a sparse entry still renders.
type variant struct {
	key    string
	render func(sb *strings.Builder, n int, entry gjson.Result)
}

var variants = map[Category]variant{
	CategorySearch: {key: "organic", render: func(sb *strings.Builder, n int, e gjson.Result) {
		fmt.Fprintf(sb, "%d. %s\n", n, field(e, "title", "No title"))
		fmt.Fprintf(sb, "   Link: %s\n", field(e, "link", "No link"))
		fmt.Fprintf(sb, "   Snippet: %s\n\n", field(e, "snippet", "No description"))
	}},
	CategoryNews: {key: "news", render: func(sb *strings.Builder, n int, e gjson.Result) {
		fmt.Fprintf(sb, "%d. %s\n", n, field(e, "title", "No title"))
		fmt.Fprintf(sb, "   Source: %s\n", field(e, "source", "Unknown source"))
		fmt.Fprintf(sb, "   Published: %s\n", field(e, "date", "Unknown date"))
		fmt.Fprintf(sb, "   Link: %s\n", field(e, "link", "No link"))
		fmt.Fprintf(sb, "   Snippet: %s\n\n", field(e, "snippet", "No description"))
	}},
	CategoryImages: {key: "images", render: func(sb *strings.Builder, n int, e gjson.Result) {
		fmt.Fprintf(sb, "%d. Image: %s\n", n, field(e, "title", "No title"))
		fmt.Fprintf(sb, "   Source: %s\n", field(e, "source", "Unknown source"))
		fmt.Fprintf(sb, "   Link: %s\n\n", field(e, "imageUrl", "No image URL"))
	}},
	CategoryPlaces: {key: "places", render: func(sb *strings.Builder, n int, e gjson.Result) {
		fmt.Fprintf(sb, "%d. %s\n", n, field(e, "name", "Unnamed location"))
		fmt.Fprintf(sb, "   Address: %s\n", field(e, "address", "No address"))
		fmt.Fprintf(sb, "   Rating: %s/5 (%s reviews)\n\n", field(e, "rating", "No rating"), field(e, "reviewCount", "0"))
	}},
}

// field returns the string form of key, or placeholder when it is absent or null.
func field(entry gjson.Result, key, placeholder string) string {
	v := entry.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return placeholder
	}
	return v.String()
}

// formatResults renders a provider payload for the requested category. The
// answer box is appended whatever the category, after any category results.
func formatResults(payload gjson.Result, category Category, limit int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Search results for query: '%s'\n\n", field(payload, "searchParameters.q", "Unknown query"))

	found := false
	if v, ok := variants[category]; ok {
		entries := payload.Get(v.key)
		if entries.IsArray() {
			for i, entry := range entries.Array() {
				if i >= limit {
					break
				}
				v.render(&sb, i+1, entry)
				found = true
			}
		}
	}

	if box := payload.Get("answerBox"); box.IsObject() {
		writeAnswerBox(&sb, box)
		found = true
	}

	if !found {
		sb.WriteString(noResults)
	}
	return sb.String()
}

func writeAnswerBox(sb *strings.Builder, box gjson.Result) {
	if answer := box.Get("answer"); answer.Exists() {
		fmt.Fprintf(sb, "Quick Answer: %s\n\n", answer.String())
	} else if snippet := box.Get("snippet"); snippet.Exists() {
		fmt.Fprintf(sb, "Quick Answer: %s\n\n", snippet.String())
	}

	highlights := box.Get("snippetHighlighted").Array()
	if len(highlights) == 0 {
		return
	}
	sb.WriteString("Highlights:\n")
	for _, h := range highlights {
		fmt.Fprintf(sb, "- %s\n", h.String())
	}
	sb.WriteString("\n")
}
