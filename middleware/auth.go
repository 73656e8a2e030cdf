package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"inotebook/services"
	"inotebook/utils"

	"github.com/gin-gonic/gin"
)

const (
	// AuthTokenHeader carries the raw signed token.
	AuthTokenHeader = "auth-token"

	ContextUserID         = "user_id"
	ContextAuthToken      = "auth_token"
	ContextTokenExpiresAt = "token_expires_at"

	authFailedMessage = "Please authenticate using a valid token"
)

var ErrMissingToken = errors.New("missing auth token")

type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Principal is the authenticated caller.
type Principal struct {
	UserID    string
	Token     string
	ExpiresAt time.Time // zero when the token has no exp
}

type AuthGate struct {
	tokens  TokenVerifier
	revoked RevocationChecker
	log     *slog.Logger
}

// NewAuthGate builds the gate. revoked may be nil.
func NewAuthGate(tokens TokenVerifier, revoked RevocationChecker, log *slog.Logger) *AuthGate {
	return &AuthGate{
		tokens:  tokens,
		revoked: revoked,
		log:     log,
	}
}

// Authenticate resolves the caller of r. Failures wrap ErrMissingToken or
// services.ErrInvalidToken; anything else is an infrastructure error.
func (g *AuthGate) Authenticate(r *http.Request) (Principal, error) {
	token := r.Header.Get(AuthTokenHeader)
	if token == "" {
		return Principal{}, ErrMissingToken
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return Principal{}, err
	}

	if g.revoked != nil {
		revoked, err := g.revoked.IsRevoked(r.Context(), token)
		if err != nil {
			return Principal{}, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return Principal{}, fmt.Errorf("%w: revoked", services.ErrInvalidToken)
		}
	}

	p := Principal{UserID: claims.User.ID, Token: token}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}

// Middleware runs Authenticate and aborts the chain on failure, so the
// handler never runs for an unauthenticated request.
func (g *AuthGate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := g.Authenticate(c.Request)
		if err != nil {
			if errors.Is(err, ErrMissingToken) || errors.Is(err, services.ErrInvalidToken) {
				utils.TrackAuthAttempt("failure", "token")
				g.log.DebugContext(c, "rejected request", slog.Any("err", err), slog.String("path", c.FullPath()))
				utils.AbortWithError(c, http.StatusUnauthorized, authFailedMessage)
				return
			}

			utils.TrackError("auth", "revocation_check")
			g.log.ErrorContext(c, "auth gate failure", slog.Any("err", err), slog.String("request_id", c.GetString(ContextRequestID)))
			utils.AbortWithError(c, http.StatusInternalServerError, "Internal server Error")
			return
		}

		c.Set(ContextUserID, p.UserID)
		c.Set(ContextAuthToken, p.Token)
		if !p.ExpiresAt.IsZero() {
			c.Set(ContextTokenExpiresAt, p.ExpiresAt)
		}

		c.Next()
	}
}

// UserID returns the identity stored by the gate.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
