package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cs4241-c25/a4-adequatej/auth"
	"github.com/cs4241-c25/a4-adequatej/cliparse"
	"github.com/cs4241-c25/a4-adequatej/middleware"
	"github.com/cs4241-c25/a4-adequatej/models"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Register handles POST /auth/register
// Creates a new account and starts a session. Registration and login
// are deliberately separate endpoints so a typo'd email at login can
// never silently create a fresh empty account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	// Check if the email is already taken
	var existingID string
	err := h.db.QueryRow("SELECT id FROM users WHERE email = $1", req.Email).Scan(&existingID)
	if err == nil {
		middleware.ErrorResponse(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != sql.ErrNoRows {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		CreatedAt: time.Now(),
	}

	_, err = h.db.Exec(`
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, user.ID, user.Email, hash, user.CreatedAt)

	if err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := auth.NewSessionToken(user.ID, user.Email, h.cfg.SessionSecret, h.cfg.SessionTTL)
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("account registered", "user_id", user.ID)

	h.setSessionCookie(w, token)
	middleware.JSONResponse(w, http.StatusCreated, models.SessionResponse{
		Token: token,
		User:  user,
	})
}

// Login handles POST /auth/login
// An unknown email and a wrong password produce the same generic 401
// so login does not reveal which emails are registered.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	var user models.User
	var hash string
	err := h.db.QueryRow(`
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, req.Email).Scan(&user.ID, &user.Email, &hash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		slog.Info("login failed", "reason", "unknown email")
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(hash, req.Password); err != nil {
		slog.Info("login failed", "reason", "wrong password", "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.NewSessionToken(user.ID, user.Email, h.cfg.SessionSecret, h.cfg.SessionTTL)
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("login succeeded", "user_id", user.ID)

	h.setSessionCookie(w, token)
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Token: token,
		User:  user,
	})
}

// Logout handles POST /auth/logout
// Stateless sessions: logout just expires the cookie client-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Logged out",
	})
}

// Me handles GET /auth/me
// Returns the account behind the current session
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	err := h.db.QueryRow(`
		SELECT id, email, created_at
		FROM users
		WHERE id = $1
	`, ident.UserID).Scan(&user.ID, &user.Email, &user.CreatedAt)

	if err == sql.ErrNoRows {
		// Token outlived the account
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
