package reports

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultDatabase is the logical database every report is written to.
const DefaultDatabase = "agent_reports"

// MongoConnector opens MongoDB sessions.
type MongoConnector struct {
	// Database overrides DefaultDatabase; used by tests against a scratch database.
	Database string
}

// Connect creates a client for uri. The driver dials lazily, so reachability
// is only known after Ping.
func (c *MongoConnector) Connect(_ context.Context, uri string) (Session, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("creating mongo client: %w", err)
	}
	db := c.Database
	if db == "" {
		db = DefaultDatabase
	}
	return &mongoSession{client: client, db: client.Database(db)}, nil
}

type mongoSession struct {
	client *mongo.Client
	db     *mongo.Database
}

func (s *mongoSession) Ping(ctx context.Context) error {
	return s.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (s *mongoSession) Insert(ctx context.Context, collection string, doc StoredDocument) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", classify(err)
	}
	return idString(res.InsertedID), nil
}

func (s *mongoSession) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// classify tags driver errors with the category they are reported under.
// Errors that fit neither category are returned unchanged.
func classify(err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return Unreachable(err)
	}
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return Rejected(err)
	}
	return err
}

func idString(id any) string {
	if oid, ok := id.(bson.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
