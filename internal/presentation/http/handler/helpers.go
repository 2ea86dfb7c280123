package handler

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hubxp/backoffice-api/pkg/apperror"
)

// parseObjectID parses a hex document id, mapping failures to a bad request.
func parseObjectID(value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, apperror.NewBadRequestError("Invalid id: " + value)
	}
	return id, nil
}

// parseDate accepts an ISO date ("2006-01-02") or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperror.NewBadRequestError("Invalid date: " + value)
	}
	return t.UTC(), nil
}

// parseObjectIDs parses a list of hex document ids.
func parseObjectIDs(values []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, value := range values {
		id, err := parseObjectID(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
