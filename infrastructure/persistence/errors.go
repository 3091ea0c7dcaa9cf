package persistence

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/apperror"
)

// mapFindErr classifies a single-document read error: a cursor miss is
// NotFound, everything else is the store being unavailable.
func mapFindErr(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperror.New(apperror.KindNotFound, entity+" not found")
	}
	return apperror.Wrap(err, apperror.KindUpstream, "reading "+entity+" failed")
}

// mapWriteErr classifies a write error: a unique-index violation is a
// Conflict so toggle callers can re-resolve, everything else is upstream.
func mapWriteErr(err error, entity string) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return apperror.New(apperror.KindConflict, entity+" already exists")
	}
	return apperror.Wrap(err, apperror.KindUpstream, "writing "+entity+" failed")
}
