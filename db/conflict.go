package db

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const duplicateKeyCode = 11000

var (
	dupKeyFieldPattern = regexp.MustCompile(`dup key: \{ ?"?([A-Za-z0-9_.]+)"?\s*:`)
	indexNamePattern   = regexp.MustCompile(`index: (?:[A-Za-z0-9_]+\.)*\$?([A-Za-z0-9_]+?)_-?1[\s_]`)
)

// ConflictExtractor maps a MongoDB duplicate-key error to the document field
// that violated the unique index.
type ConflictExtractor struct{}

func (ConflictExtractor) ConflictField(err error) (string, bool) {
	return ConflictField(err)
}

/*
* ok is false when err is not a duplicate-key error at all
* field is empty when the store reported a duplicate but not which key
 */
func ConflictField(err error) (field string, ok bool) {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return "", false
	}

	var writeException mongo.WriteException
	if errors.As(err, &writeException) {
		for _, we := range writeException.WriteErrors {
			if we.Code != duplicateKeyCode {
				continue
			}
			if field := fieldFromRaw(we.Raw); field != "" {
				return field, true
			}
			if field := fieldFromMessage(we.Message); field != "" {
				return field, true
			}
		}
	}

	var bulkException mongo.BulkWriteException
	if errors.As(err, &bulkException) {
		for _, we := range bulkException.WriteErrors {
			if we.Code != duplicateKeyCode {
				continue
			}
			if field := fieldFromRaw(we.Raw); field != "" {
				return field, true
			}
			if field := fieldFromMessage(we.Message); field != "" {
				return field, true
			}
		}
	}

	var commandError mongo.CommandError
	if errors.As(err, &commandError) {
		if field := fieldFromMessage(commandError.Message); field != "" {
			return field, true
		}
	}
	return "", true
}

func fieldFromRaw(raw bson.Raw) string {
	if len(raw) == 0 {
		return ""
	}
	for _, key := range []string{"keyPattern", "keyValue"} {
		doc, ok := raw.Lookup(key).DocumentOK()
		if !ok {
			continue
		}
		elements, err := doc.Elements()
		if err != nil || len(elements) == 0 {
			continue
		}
		return elements[0].Key()
	}
	return ""
}

func fieldFromMessage(message string) string {
	if m := dupKeyFieldPattern.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	if m := indexNamePattern.FindStringSubmatch(message + " "); m != nil {
		return m[1]
	}
	return ""
}
