/*
Package router defines HTTP routes for the anime-shelf API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Auth (public):

	POST /auth/register - Create account, start session
	POST /auth/login    - Start session
	POST /auth/logout   - Expire session cookie
	GET  /auth/me       - Current account (session required)

Anime records (session required):

	POST   /anime      - Add record
	GET    /anime      - List records, popularity score descending
	GET    /anime/{id} - Get one record
	PATCH  /anime/{id} - Replace core fields, recompute score
	DELETE /anime/{id} - Remove record

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(db, cfg)
	animeHandler := handlers.NewAnimeHandler(db, cfg)

All handlers receive the database connection and configuration.
Protected routes are wrapped in middleware.RequireAuth, which maps a
missing or invalid session to 401 before the handler runs.
*/
package router
