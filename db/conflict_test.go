package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyException(message string, raw bson.Raw) mongo.WriteException {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: duplicateKeyCode, Message: message, Raw: raw}},
	}
}

func TestConflictField_FromKeyPattern(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "code", Value: duplicateKeyCode},
		{Key: "keyPattern", Value: bson.D{{Key: "username", Value: 1}}},
		{Key: "keyValue", Value: bson.D{{Key: "username", Value: "bob"}}},
	})
	require.NoError(t, err)

	field, ok := ConflictField(duplicateKeyException("E11000 duplicate key error", raw))
	assert.True(t, ok)
	assert.Equal(t, "username", field)
}

func TestConflictField_FromMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "modern server message",
			message: `E11000 duplicate key error collection: clinicdesk.users index: email_1 dup key: { email: "bob@x.com" }`,
			want:    "email",
		},
		{
			name:    "legacy message without field name",
			message: `E11000 duplicate key error index: clinicdesk.users.$username_1 dup key: { : "bob" }`,
			want:    "username",
		},
		{
			name:    "plain index name",
			message: `E11000 duplicate key error collection: clinicdesk.users index: username_1 dup key: { : "bob" }`,
			want:    "username",
		},
		{
			name:    "unparseable",
			message: `E11000 duplicate key error`,
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := ConflictField(duplicateKeyException(tt.message, nil))
			assert.True(t, ok)
			assert.Equal(t, tt.want, field)
		})
	}
}

func TestConflictField_WrappedError(t *testing.T) {
	err := fmt.Errorf("insert account: %w", duplicateKeyException(`E11000 duplicate key error collection: clinicdesk.users index: email_1 dup key: { email: "a@b.c" }`, nil))

	field, ok := ConflictExtractor{}.ConflictField(err)
	assert.True(t, ok)
	assert.Equal(t, "email", field)
}

func TestConflictField_NotDuplicate(t *testing.T) {
	_, ok := ConflictField(errors.New("server selection error"))
	assert.False(t, ok)

	_, ok = ConflictField(nil)
	assert.False(t, ok)

	_, ok = ConflictField(mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121, Message: "Document failed validation"}}})
	assert.False(t, ok)
}
