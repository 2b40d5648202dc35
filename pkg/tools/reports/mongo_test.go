package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/hamzaessahbaoui/agent-tools/toolkit"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want toolkit.ErrorKind
	}{
		{
			name: "write exception",
			err:  mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 13, Message: "not authorized"}}},
			want: toolkit.KindOperation,
		},
		{
			name: "command error",
			err:  mongo.CommandError{Code: 121, Message: "Document failed validation"},
			want: toolkit.KindOperation,
		},
		{
			name: "network labelled command error",
			err:  mongo.CommandError{Code: 6, Message: "host unreachable", Labels: []string{"NetworkError"}},
			want: toolkit.KindConnectivity,
		},
		{
			name: "deadline",
			err:  context.DeadlineExceeded,
			want: toolkit.KindConnectivity,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var storeErr *StoreError
			require.True(t, errors.As(classify(tc.err), &storeErr))
			assert.Equal(t, tc.want, storeErr.Kind)
			assert.Equal(t, tc.err, storeErr.Err)
		})
	}
}

func TestClassify_LeavesOtherErrorsAlone(t *testing.T) {
	plain := errors.New("cannot marshal")

	assert.Same(t, plain, classify(plain))
}

func TestIDString(t *testing.T) {
	oid := bson.NewObjectID()

	assert.Equal(t, oid.Hex(), idString(oid))
	assert.Equal(t, "custom-id", idString("custom-id"))
	assert.Equal(t, "42", idString(int32(42)))
}

func TestMongoConnector_InvalidURI(t *testing.T) {
	_, err := (&MongoConnector{}).Connect(context.Background(), "not-a-mongo-uri")

	assert.Error(t, err)
}

func TestStoredDocument_BSONFieldNames(t *testing.T) {
	raw, err := bson.Marshal(StoredDocument{Content: "c", Metadata: map[string]any{"k": "v"}})
	require.NoError(t, err)

	var got bson.M
	require.NoError(t, bson.Unmarshal(raw, &got))
	assert.Contains(t, got, "content")
	assert.Contains(t, got, "created_at")
	assert.Contains(t, got, "metadata")
}
