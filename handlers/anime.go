package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/cs4241-c25/a4-adequatej/cliparse"
	"github.com/cs4241-c25/a4-adequatej/middleware"
	"github.com/cs4241-c25/a4-adequatej/models"
)

type AnimeHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAnimeHandler(db *sql.DB, cfg cliparse.Config) *AnimeHandler {
	return &AnimeHandler{db: db, cfg: cfg}
}

// Create handles POST /anime
func (h *AnimeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.AnimeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateAnimeRequest(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	record := models.Anime{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Rating:          *req.Rating,
		Episodes:        *req.Episodes,
		ImageURL:        req.ImageURL,
		PopularityScore: PopularityScore(*req.Rating, *req.Episodes),
		OwnerID:         ident.UserID,
		CreatedAt:       time.Now(),
	}

	_, err := h.db.Exec(`
		INSERT INTO anime (id, owner_id, title, rating, episodes, image_url, popularity_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, record.ID, record.OwnerID, record.Title, record.Rating, record.Episodes,
		record.ImageURL, record.PopularityScore, record.CreatedAt)

	if err != nil {
		slog.Error("failed to insert anime", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add anime")
		return
	}

	slog.Info("anime added", "anime_id", record.ID, "user_id", ident.UserID)

	middleware.JSONResponse(w, http.StatusCreated, record)
}

// List handles GET /anime
// Returns the caller's records ordered by popularity score, highest first
func (h *AnimeHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, title, rating, episodes, image_url, popularity_score, created_at, updated_at
		FROM anime
		WHERE owner_id = $1
		ORDER BY popularity_score DESC
	`, ident.UserID)

	if err != nil {
		slog.Error("failed to query anime", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.AnimeListEntry{}
	for rows.Next() {
		var a models.Anime
		if err := rows.Scan(&a.ID, &a.Title, &a.Rating, &a.Episodes, &a.ImageURL,
			&a.PopularityScore, &a.CreatedAt, &a.UpdatedAt); err != nil {
			slog.Error("failed to scan anime", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		a.OwnerID = ident.UserID
		entries = append(entries, models.AnimeListEntry{
			Anime: a,
			Added: humanize.Time(a.CreatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate anime", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListAnimeResponse{
		Anime: entries,
		Count: len(entries),
	})
}

// Get handles GET /anime/{id}
func (h *AnimeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animeID := r.PathValue("id")
	if animeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "anime id is required")
		return
	}

	record, err := h.getOwnedAnime(animeID, ident.UserID)
	if err == sql.ErrNoRows {
		// Someone else's record reports identically to a missing one
		middleware.ErrorResponse(w, http.StatusNotFound, "Anime not found")
		return
	}
	if err != nil {
		slog.Error("failed to query anime", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, record)
}

// Update handles PATCH /anime/{id}
// Full replacement of the three core fields; no per-field patching.
// The popularity score is always recomputed server-side.
func (h *AnimeHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animeID := r.PathValue("id")
	if animeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "anime id is required")
		return
	}

	var req models.AnimeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateAnimeRequest(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	score := PopularityScore(*req.Rating, *req.Episodes)
	updatedAt := time.Now()

	res, err := h.db.Exec(`
		UPDATE anime
		SET title = $1, rating = $2, episodes = $3, image_url = $4, popularity_score = $5, updated_at = $6
		WHERE id = $7 AND owner_id = $8
	`, req.Title, *req.Rating, *req.Episodes, req.ImageURL, score, updatedAt, animeID, ident.UserID)

	if err != nil {
		slog.Error("failed to update anime", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update anime")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update anime")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Anime not found")
		return
	}

	record, err := h.getOwnedAnime(animeID, ident.UserID)
	if err != nil {
		slog.Error("failed to reload anime", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("anime updated", "anime_id", animeID, "user_id", ident.UserID)

	middleware.JSONResponse(w, http.StatusOK, record)
}

// Delete handles DELETE /anime/{id}
func (h *AnimeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	animeID := r.PathValue("id")
	if animeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "anime id is required")
		return
	}

	res, err := h.db.Exec(`
		DELETE FROM anime
		WHERE id = $1 AND owner_id = $2
	`, animeID, ident.UserID)

	if err != nil {
		slog.Error("failed to delete anime", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete anime")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete anime")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Anime not found")
		return
	}

	slog.Info("anime deleted", "anime_id", animeID, "user_id", ident.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteAnimeResponse{Success: true})
}

// getOwnedAnime loads a record scoped to its owner. Ownership is part
// of the WHERE clause so "not found" and "not yours" are the same
// sql.ErrNoRows to the caller.
func (h *AnimeHandler) getOwnedAnime(animeID, ownerID string) (models.Anime, error) {
	var a models.Anime
	err := h.db.QueryRow(`
		SELECT id, title, rating, episodes, image_url, popularity_score, created_at, updated_at
		FROM anime
		WHERE id = $1 AND owner_id = $2
	`, animeID, ownerID).Scan(&a.ID, &a.Title, &a.Rating, &a.Episodes, &a.ImageURL,
		&a.PopularityScore, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return models.Anime{}, err
	}
	a.OwnerID = ownerID
	return a, nil
}

func validateAnimeRequest(req models.AnimeRequest) string {
	if req.Title == "" {
		return "title is required"
	}
	if req.Rating == nil {
		return "rating is required"
	}
	if req.Episodes == nil {
		return "episodes is required"
	}
	if *req.Episodes <= 0 {
		return "episodes must be a positive count"
	}
	return ""
}
