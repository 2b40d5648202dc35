package search

import (
	"strings"

	"github.com/hamzaessahbaoui/agent-tools/toolkit"
)

// Category selects which result list the provider is asked for.
type Category string

const (
	CategorySearch Category = "search"
	CategoryNews   Category = "news"
	CategoryImages Category = "images"
	CategoryPlaces Category = "places"
)

// Categories is the accepted set, in the order it is reported to callers.
var Categories = []Category{CategorySearch, CategoryNews, CategoryImages, CategoryPlaces}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

func categoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

const defaultNumResults = 5

// Args are the arguments of the web_search tool.
type Args struct {
	Query      string   `json:"query" jsonschema:"required,description=The search query to look up on the web."`
	NumResults int      `json:"num_results,omitempty" jsonschema:"description=Number of search results to return.,default=5,minimum=1"`
	SearchType Category `json:"search_type,omitempty" jsonschema:"description=Type of search: 'search' or 'news' or 'images' or 'places'.,default=search,enum=search,enum=news,enum=images,enum=places"`
}

// ApplyDefaults fills the omitted optional fields.
func (a *Args) ApplyDefaults() {
	if a.NumResults == 0 {
		a.NumResults = defaultNumResults
	}
	if a.SearchType == "" {
		a.SearchType = CategorySearch
	}
}

// Validate checks the arguments without touching the network. The category
// check comes first so its message is the one reported.
func (a *Args) Validate() error {
	if !a.SearchType.Valid() {
		return toolkit.Fail(toolkit.KindInvalidInput, "Invalid search type: %s. Must be one of: %s", a.SearchType, categoryList())
	}
	if strings.TrimSpace(a.Query) == "" {
		return toolkit.Fail(toolkit.KindInvalidInput, "Invalid search query: query must not be empty")
	}
	if a.NumResults < 1 {
		return toolkit.Fail(toolkit.KindInvalidInput, "Invalid number of results: %d. Must be a positive integer", a.NumResults)
	}
	return nil
}

// request is the provider wire payload.
type request struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}
