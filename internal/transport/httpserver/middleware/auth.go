package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"progym-go/internal/config"
	"progym-go/pkg/logger"
)

// HeaderAuth trusts a user id set by the gateway in front of the API.
type HeaderAuth struct {
	header   string
	skipAuth bool
	mockUser User
	log      logger.Logger
}

type contextKey int

const (
	userIDKey contextKey = iota
	userKey
)

type User struct {
	ID string
}

func NewHeaderAuth(cfg config.AuthConfig, log logger.Logger) *HeaderAuth {
	header := strings.TrimSpace(cfg.UserHeader)
	if header == "" {
		header = "X-User-ID"
	}

	return &HeaderAuth{
		header:   header,
		skipAuth: cfg.SkipAuth,
		mockUser: User{ID: strings.TrimSpace(cfg.MockUserID)},
		log:      log,
	}
}

func (a *HeaderAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.skipAuth {
			user := a.mockUser
			if _, err := uuid.Parse(user.ID); err != nil {
				writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth mock user id not configured")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
			return
		}

		value := strings.TrimSpace(r.Header.Get(a.header))
		if value == "" {
			unauthorized(w)
			return
		}
		parsed, err := uuid.Parse(value)
		if err != nil {
			a.log.Debug("auth: rejected user header", "header", a.header, "err", err)
			unauthorized(w)
			return
		}

		ctx := WithUser(r.Context(), User{ID: parsed.String()})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid user id")
}

func WithUser(ctx context.Context, user User) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, userIDKey, user.ID)
}

func UserFromContext(ctx context.Context) (User, bool) {
	value := ctx.Value(userKey)
	user, ok := value.(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(userIDKey)
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
