package router

import (
	"database/sql"
	"net/http"

	"github.com/cs4241-c25/a4-adequatej/cliparse"
	"github.com/cs4241-c25/a4-adequatej/handlers"
	"github.com/cs4241-c25/a4-adequatej/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	animeHandler := handlers.NewAnimeHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth (public)
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(middleware.RequireAuth(cfg, authHandler.Me)))

	// Anime records (session required, scoped to the caller)
	mux.HandleFunc("POST /anime", middleware.WithLogging(middleware.RequireAuth(cfg, animeHandler.Create)))
	mux.HandleFunc("GET /anime", middleware.WithLogging(middleware.RequireAuth(cfg, animeHandler.List)))
	mux.HandleFunc("GET /anime/{id}", middleware.WithLogging(middleware.RequireAuth(cfg, animeHandler.Get)))
	mux.HandleFunc("PATCH /anime/{id}", middleware.WithLogging(middleware.RequireAuth(cfg, animeHandler.Update)))
	mux.HandleFunc("DELETE /anime/{id}", middleware.WithLogging(middleware.RequireAuth(cfg, animeHandler.Delete)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("anime-shelf API v1"))
	})

	return mux
}
