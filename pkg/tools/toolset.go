// Package tools assembles the search and report tools into a toolkit.
package tools

import (
	"log/slog"

	"github.com/hamzaessahbaoui/agent-tools/pkg/tools/reports"
	"github.com/hamzaessahbaoui/agent-tools/pkg/tools/search"
	"github.com/hamzaessahbaoui/agent-tools/toolkit"
)

// ToolkitName is the name the toolkit is published under.
const ToolkitName = "agent_tools"

// Options configures the tools. Credentials may be empty; the affected tool
// then answers every call with a configuration message.
type Options struct {
	SerperAPIKey  string
	SerperBaseURL string
	MongoURI      string
	Logger        *slog.Logger

	// Overrides for tests.
	HTTPClient search.Doer
	Connector  reports.Connector
}

// Set holds the concrete tools behind a toolkit.
type Set struct {
	Search  *search.Tool
	Reports *reports.Tool
}

// New constructs the tools from opts.
func New(opts Options) *Set {
	return &Set{
		Search: search.New(search.Config{
			APIKey:     opts.SerperAPIKey,
			BaseURL:    opts.SerperBaseURL,
			HTTPClient: opts.HTTPClient,
			Logger:     opts.Logger,
		}),
		Reports: reports.New(reports.Config{
			URI:       opts.MongoURI,
			Connector: opts.Connector,
			Logger:    opts.Logger,
		}),
	}
}

// Toolkit groups the tools under a "web" and a "reports" parent.
func (s *Set) Toolkit() *toolkit.Toolkit {
	return toolkit.New(ToolkitName,
		toolkit.NewParent("web", "Searches the web through the Serper API.", s.Search.Child()),
		toolkit.NewParent("reports", "Persists generated reports in MongoDB.", s.Reports.Child()),
	)
}
