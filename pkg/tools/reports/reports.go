// Package reports implements the store_report tool, which persists a text
// report with metadata in MongoDB.
package reports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hamzaessahbaoui/agent-tools/toolkit"
)

const (
	// Name is the child name the tool is registered under.
	Name = "store_report"
	// Title is the human-readable tool name.
	Title = "Store Report in MongoDB"
	// Description is shown to the model.
	Description = "Stores a generated report in MongoDB for future reference and analytics. " +
		"This tool connects to MongoDB using the connection string in the environment variables " +
		"and saves the report content along with metadata."

	uriVariable = "MONGODB_URI"
)

// StoreError tags a store failure with the category it is reported under.
type StoreError struct {
	Kind toolkit.ErrorKind
	Err  error
}

func (e *StoreError) Error() string { return e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

// Unreachable marks err as a connectivity failure.
func Unreachable(err error) error {
	return &StoreError{Kind: toolkit.KindConnectivity, Err: err}
}

// Rejected marks err as a store-side rejection of the operation.
func Rejected(err error) error {
	return &StoreError{Kind: toolkit.KindOperation, Err: err}
}

// Config carries everything the tool needs; nothing is read from the
// environment at call time.
type Config struct {
	URI       string
	Connector Connector
	Now       func() time.Time
	Logger    *slog.Logger
}

// Tool opens a fresh session per call and releases it before returning.
type Tool struct {
	uri       string
	connector Connector
	now       func() time.Time
	logger    *slog.Logger
}

// New creates the report storage tool. A nil Connector means MongoDB.
func New(cfg Config) *Tool {
	t := &Tool{
		uri:       cfg.URI,
		connector: cfg.Connector,
		now:       cfg.Now,
		logger:    cfg.Logger,
	}
	if t.connector == nil {
		t.connector = &MongoConnector{}
	}
	if t.now == nil {
		t.now = time.Now
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

// Child exposes the tool to a toolkit.
func (t *Tool) Child() toolkit.Child {
	return toolkit.NewTextChild[Args](Name, Description, t.Store)
}

// Store writes the report and always returns display text: a confirmation
// carrying the new identifier or a description of what went wrong.
func (t *Tool) Store(ctx context.Context, args Args) string {
	return toolkit.Guard(ctx, t.logger, Name, func(ctx context.Context) (string, error) {
		return t.Run(ctx, args)
	})
}

// Run is Store before failures are rendered.
func (t *Tool) Run(ctx context.Context, args Args) (string, error) {
	if t.uri == "" {
		return "", toolkit.Fail(toolkit.KindConfigMissing,
			"MongoDB URI not found in environment variables. Please set %s in your .env file.", uriVariable)
	}
	args.ApplyDefaults()
	if err := args.Validate(); err != nil {
		return "", err
	}

	session, err := t.connector.Connect(ctx, t.uri)
	if err != nil {
		return "", translate(err)
	}
	defer func() {
		if err := session.Close(context.WithoutCancel(ctx)); err != nil {
			t.logger.WarnContext(ctx, "closing store session", "err", err)
		}
	}()

	if err := session.Ping(ctx); err != nil {
		return "", translate(Unreachable(err))
	}

	doc := StoredDocument{
		Content:   args.ReportContent,
		CreatedAt: t.now().UTC(),
		Metadata:  args.ReportMetadata,
	}
	id, err := session.Insert(ctx, args.CollectionName, doc)
	if err != nil {
		return "", translate(err)
	}

	t.logger.InfoContext(ctx, "report stored", "collection", args.CollectionName, "id", id)
	return fmt.Sprintf("Report successfully stored in MongoDB with ID: %s", id), nil
}

// translate maps a store error onto its display category.
func translate(err error) error {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		switch storeErr.Kind {
		case toolkit.KindConnectivity:
			return toolkit.Fail(toolkit.KindConnectivity, "Failed to connect to MongoDB: %v", storeErr.Err)
		case toolkit.KindOperation:
			return toolkit.Fail(toolkit.KindOperation, "Failed to store report in MongoDB: %v", storeErr.Err)
		}
	}
	return toolkit.Fail(toolkit.KindUnexpected, "An error occurred while storing the report: %v", err)
}
