package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/configuration"
	"videotube/infrastructure/logger"
)

// subjectKey is the single context key the handlers read the caller
// identity from.
const subjectKey = "subject_id"

// SubjectID returns the authenticated caller's id hex, empty when the
// request never passed the auth middleware.
func SubjectID(ctx *gin.Context) string {
	return ctx.GetString(subjectKey)
}

// Auth resolves the bearer token into a subject id. The token's Subject
// claim carries the user id; a token for a user that no longer exists is
// rejected.
func Auth(userRepository repository.IUser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res := dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"}

		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		parts := strings.Split(authorization, "Bearer ")
		if len(parts) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		claims, err := parseToken(parts[1], configuration.C.App.SecretKey)
		if err != nil {
			res.ResponseMessage = tokenErrorMessage(err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		userID, err := bson.ObjectIDFromHex(claims.Subject)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		found, err := userRepository.Exists(ctx.Request.Context(), userID)
		if err != nil || !found {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		ctx.Set(subjectKey, claims.Subject)
		ctx.Next()
	}
}

func parseToken(raw, secretKey string) (*model.UserClaims, error) {
	var claims model.UserClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("invalid token", jwt.ValidationErrorClaimsInvalid)
	}
	return &claims, nil
}

func tokenErrorMessage(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		switch {
		case ve.Errors&jwt.ValidationErrorMalformed != 0:
			return "That's not even a token"
		case ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
			return "Token expired or not active yet"
		}
	}
	logger.GetLogger().WithField("error", err).Info("token rejected")
	return "Unauthorized"
}
