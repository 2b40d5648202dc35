// Package search implements the web_search tool on top of the Serper API.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/hamzaessahbaoui/agent-tools/toolkit"
)

const (
	// Name is the child name the tool is registered under.
	Name = "web_search"
	// Title is the human-readable tool name.
	Title = "Web Search"
	// Description is shown to the model.
	Description = "Searches the internet for information on a given topic. " +
		"Useful for finding recent or factual information about any subject. " +
		"Provide a clear and specific search query for best results."

	DefaultBaseURL = "https://google.serper.dev"
	apiKeyVariable = "SERPER_API_KEY"
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config carries everything the tool needs; nothing is read from the
// environment at call time.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient Doer
	Logger     *slog.Logger
}

// Tool performs one provider request per call and keeps no state between calls.
type Tool struct {
	apiKey  string
	baseURL string
	client  Doer
	logger  *slog.Logger
}

// New creates the search tool.
func New(cfg Config) *Tool {
	t := &Tool{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  cfg.HTTPClient,
		logger:  cfg.Logger,
	}
	if t.baseURL == "" {
		t.baseURL = DefaultBaseURL
	}
	if t.client == nil {
		t.client = http.DefaultClient
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

// Child exposes the tool to a toolkit.
func (t *Tool) Child() toolkit.Child {
	return toolkit.NewTextChild[Args](Name, Description, t.Search)
}

// Search runs the query and always returns display text: formatted results
// or a description of what went wrong.
func (t *Tool) Search(ctx context.Context, args Args) string {
	return toolkit.Guard(ctx, t.logger, Name, func(ctx context.Context) (string, error) {
		return t.Run(ctx, args)
	})
}

// Run is Search before failures are rendered. Returned errors are
// toolkit.ToolKitErrors whose Message is the display text.
func (t *Tool) Run(ctx context.Context, args Args) (string, error) {
	args.ApplyDefaults()
	if err := args.Validate(); err != nil {
		return "", err
	}
	if t.apiKey == "" {
		return "", toolkit.Fail(toolkit.KindConfigMissing,
			"Serper API key not found in environment variables. Please set %s in your .env file.", apiKeyVariable)
	}

	body, err := t.execute(ctx, args)
	if err != nil {
		return "", err
	}

	if !gjson.ValidBytes(body) {
		return "", toolkit.Fail(toolkit.KindMalformed, "Error parsing search results")
	}
	payload := gjson.ParseBytes(body)
	if !payload.IsObject() {
		return "", toolkit.Fail(toolkit.KindMalformed, "Error parsing search results")
	}

	return formatResults(payload, args.SearchType, args.NumResults), nil
}

// execute sends the single POST for args and returns the raw response body.
func (t *Tool) execute(ctx context.Context, args Args) ([]byte, error) {
	payload, err := json.Marshal(request{Q: args.Query, Num: args.NumResults})
	if err != nil {
		return nil, toolkit.Fail(toolkit.KindUnexpected, "An unexpected error occurred: %v", err)
	}

	endpoint := t.baseURL + "/" + string(args.SearchType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, toolkit.Fail(toolkit.KindUnexpected, "An unexpected error occurred: %v", err)
	}
	req.Header.Set("X-API-KEY", t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	t.logger.DebugContext(ctx, "sending search request", "endpoint", endpoint, "num", args.NumResults)
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, toolkit.Fail(toolkit.KindConnectivity, "Error performing web search: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, toolkit.Fail(toolkit.KindOperation,
			"Error performing web search: %d %s for url: %s", resp.StatusCode, http.StatusText(resp.StatusCode), endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, toolkit.Fail(toolkit.KindConnectivity, "Error performing web search: %v", fmt.Errorf("reading response: %w", err))
	}
	return body, nil
}
