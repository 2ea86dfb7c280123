package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/hubxp/backoffice-api/pkg/apperror"
)

// wrapStoreErr classifies store failures. Connectivity problems (no reachable
// server, network drops, timeouts) become 503 application errors; anything
// else passes through unchanged.
func wrapStoreErr(err error) error {
	if err == nil {
		return nil
	}

	var selErr topology.ServerSelectionError
	if errors.As(err, &selErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) {
		return apperror.NewServiceUnavailableError("Data store unavailable: " + err.Error())
	}
	return err
}
