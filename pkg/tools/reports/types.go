package reports

import (
	"context"
	"strings"
	"time"

	"github.com/hamzaessahbaoui/agent-tools/toolkit"
)

// DefaultCollection receives reports when the caller names none.
const DefaultCollection = "reports"

// Args are the arguments of the store_report tool.
type Args struct {
	ReportContent  string         `json:"report_content" jsonschema:"required,description=The content of the report to be stored in MongoDB."`
	ReportMetadata map[string]any `json:"report_metadata,omitempty" jsonschema:"description=Additional metadata about the report (e.g. topic or timestamp)."`
	CollectionName string         `json:"collection_name,omitempty" jsonschema:"description=The name of the MongoDB collection to store the report in.,default=reports"`
}

// ApplyDefaults fills the omitted optional fields.
func (a *Args) ApplyDefaults() {
	if a.ReportMetadata == nil {
		a.ReportMetadata = map[string]any{}
	}
	if strings.TrimSpace(a.CollectionName) == "" {
		a.CollectionName = DefaultCollection
	}
}

// Validate rejects a report without content.
func (a *Args) Validate() error {
	if a.ReportContent == "" {
		return toolkit.Fail(toolkit.KindInvalidInput, "Invalid report: report_content must not be empty")
	}
	return nil
}

// StoredDocument is the record written once per successful call.
type StoredDocument struct {
	Content   string         `bson:"content" json:"content"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	Metadata  map[string]any `bson:"metadata" json:"metadata"`
}

// Connector opens a session to the document store.
type Connector interface {
	Connect(ctx context.Context, uri string) (Session, error)
}

// Session is one scoped connection. Close must be safe to call after any
// other method has failed.
type Session interface {
	// Ping round-trips to the store's administrative endpoint.
	Ping(ctx context.Context) error
	// Insert writes doc into collection and returns the identifier the store assigned.
	Insert(ctx context.Context, collection string, doc StoredDocument) (string, error)
	Close(ctx context.Context) error
}
