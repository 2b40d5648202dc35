package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolkit_RoutesToBothTools(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"searchParameters":{"q":"go"},"organic":[{"title":"Go","link":"https://go.dev","snippet":"The Go language"}]}`))
	}))
	defer srv.Close()

	tk := New(Options{SerperAPIKey: "key", SerperBaseURL: srv.URL, HTTPClient: srv.Client()}).Toolkit()

	resp, err := tk.HandleToolKit(context.Background(), json.RawMessage(`{
		"name": "agent_tools",
		"parents": [
			{"name": "web", "childs": [{"name": "web_search", "args": {"query": "go"}}]},
			{"name": "reports", "childs": [{"name": "store_report", "args": {"report_content": "r"}}]}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, resp.Responses, 2)

	byParent := map[string]interface{}{}
	for _, p := range resp.Responses {
		require.Len(t, p.ChildsResponses, 1)
		byParent[p.Name] = p.ChildsResponses[0].Response
	}
	assert.Contains(t, byParent["web"], "1. Go\n   Link: https://go.dev\n")
	assert.Equal(t, "MongoDB URI not found in environment variables. Please set MONGODB_URI in your .env file.", byParent["reports"])
}

func TestToolkit_Listing(t *testing.T) {
	entries := New(Options{}).Toolkit().Children()

	require.Len(t, entries, 2)
	assert.Equal(t, "reports", entries[0].Parent.GetName())
	assert.Equal(t, "store_report", entries[0].Child.GetName())
	assert.Equal(t, "web", entries[1].Parent.GetName())
	assert.Equal(t, "web_search", entries[1].Child.GetName())
}
