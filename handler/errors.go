package handler

import (
	"errors"
	"log/slog"

	"inotebook/middleware"
	"inotebook/usecase"
	"inotebook/utils"

	"github.com/gin-gonic/gin"
)

const (
	msgUserExists       = "Sorry User with this email already exists"
	msgBadCredentials   = "Please try to login with correct credentials"
	msgNotFound         = "Not Found"
	msgNotAllowed       = "Not Allowed"
	msgRevocationOff    = "Token revocation is not enabled"
	msgInternal         = "Internal server Error"
	msgRegistrationFail = "Some Error occured"
)

// writeError maps a usecase error onto its response. Unknown errors are
// logged and answered with fallback, never with err itself.
func writeError(c *gin.Context, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrUserExists):
		utils.BadRequest(c, msgUserExists)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.BadRequest(c, msgBadCredentials)
	case errors.Is(err, usecase.ErrNoteNotFound):
		utils.NotFound(c, msgNotFound)
	case errors.Is(err, usecase.ErrNotAllowed):
		utils.Forbidden(c, msgNotAllowed)
	case errors.Is(err, usecase.ErrRevocationDisabled):
		utils.NotImplemented(c, msgRevocationOff)
	default:
		utils.TrackError("handler", "internal")
		log.ErrorContext(c, "request failed",
			slog.Any("err", err),
			slog.String("path", c.FullPath()),
			slog.String("request_id", c.GetString(middleware.ContextRequestID)),
		)
		utils.InternalError(c, fallback)
	}
}

func writeValidationError(c *gin.Context, err error, messages map[string]string) {
	utils.TrackError("validation", "body")
	utils.BadRequest(c, utils.FieldErrors(err, messages))
}
