package usecase

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/apperror"
)

// parseID validates the hex id format at the usecase boundary so malformed
// ids fail as InvalidArgument before any store call.
func parseID(field, hex string) (bson.ObjectID, error) {
	if hex == "" {
		return bson.ObjectID{}, apperror.Newf(apperror.KindInvalidArgument, "missing %s id", field)
	}
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.ObjectID{}, apperror.Newf(apperror.KindInvalidArgument, "malformed %s id", field)
	}
	return id, nil
}

// hideOwnership rewrites Forbidden as NotFound so ownership-gated
// mutations answer identically for "absent" and "not yours".
func hideOwnership(err error, entity string) error {
	if apperror.IsKind(err, apperror.KindForbidden) {
		return apperror.Newf(apperror.KindNotFound, "%s not found", entity)
	}
	return err
}
