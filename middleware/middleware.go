package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cs4241-c25/a4-adequatej/auth"
	"github.com/cs4241-c25/a4-adequatej/cliparse"
	"github.com/cs4241-c25/a4-adequatej/models"
)

type contextKey string

const identityKey contextKey = "identity"

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Log request
		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		// Call the next handler
		next(w, r)

		// Log completion
		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// RequireAuth rejects the request with 401 unless it carries a valid
// session token, and stores the caller's identity in the request
// context for the wrapped handler.
func RequireAuth(cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := SessionToken(r)
		if token == "" {
			ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, email, err := auth.ParseSessionToken(token, cfg.SessionSecret)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ident := models.Identity{UserID: userID, Email: email}
		ctx := context.WithValue(r.Context(), identityKey, ident)
		next(w, r.WithContext(ctx))
	}
}

// SessionToken extracts the session token from the request.
// Checks the session cookie first, then an Authorization Bearer header.
func SessionToken(r *http.Request) string {
	if c, err := r.Cookie(auth.SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}

	return ""
}

// IdentityFrom returns the authenticated identity stored by RequireAuth
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(models.Identity)
	return ident, ok
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// CORS middleware allows cross-origin requests from the frontend
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
