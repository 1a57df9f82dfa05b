package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"progym-go/internal/config"
	"progym-go/pkg/logger"
)

func serveWithAuth(t *testing.T, cfg config.AuthConfig, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			t.Fatalf("expected user in context")
		}
		seen = user.ID
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if header != "" {
		req.Header.Set("X-User-ID", header)
	}
	rec := httptest.NewRecorder()
	NewHeaderAuth(cfg, logger.Discard()).Middleware(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestHeaderAuth(t *testing.T) {
	cfg := config.AuthConfig{UserHeader: "X-User-ID"}

	rec, seen := serveWithAuth(t, cfg, "6F9619FF-8B86-D011-B42D-00CF4FC964FF")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if seen != "6f9619ff-8b86-d011-b42d-00cf4fc964ff" {
		t.Fatalf("expected normalized user id, got %q", seen)
	}

	for _, header := range []string{"", "not-a-uuid"} {
		rec, _ := serveWithAuth(t, cfg, header)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestHeaderAuthSkip(t *testing.T) {
	cfg := config.AuthConfig{SkipAuth: true, MockUserID: "00000000-0000-0000-0000-000000000001"}
	rec, seen := serveWithAuth(t, cfg, "")
	if rec.Code != http.StatusNoContent || seen != cfg.MockUserID {
		t.Fatalf("expected mock user, got %d %q", rec.Code, seen)
	}

	cfg.MockUserID = ""
	rec, _ = serveWithAuth(t, cfg, "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without mock user, got %d", rec.Code)
	}
}
