/*
Package handlers contains HTTP request handlers for the anime-shelf API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: Account registration, login, logout, current user
  - AnimeHandler: Anime record CRUD with per-owner scoping

Handlers are created via constructor functions that accept *sql.DB and Config:

	animeHandler := handlers.NewAnimeHandler(db, cfg)

# Auth Flow

Registration and login are separate endpoints (a typo'd email at
login fails instead of silently creating an account):

	POST /auth/register → Register (201, session token; 409 if taken)
	POST /auth/login    → Login (200, session token; generic 401 otherwise)
	POST /auth/logout   → Logout (expires the session cookie)
	GET  /auth/me       → Me (requires session)

# Anime Records

All record operations require a session and are scoped to the
caller's user ID in the SQL itself, so a record that exists but
belongs to someone else is indistinguishable from one that does not
exist:

	POST   /anime      → Create (computes popularity score)
	GET    /anime      → List (popularity score descending)
	GET    /anime/{id} → Get
	PATCH  /anime/{id} → Update (full replacement, score recomputed)
	DELETE /anime/{id} → Delete

# Popularity Score

The scoring formula is implemented in score.go:

	score := PopularityScore(rating, episodes)

Rating is weighted 70%, episode count 30% with saturation at 100
episodes. The score is recomputed on every create and update and is
never client-settable.
*/
package handlers
