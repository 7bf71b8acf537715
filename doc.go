/*
Package main provides the entry point for the anime-shelf API server.

Anime-shelf is a personal anime tracker: each user keeps a private
list of shows, and every record carries a derived popularity score
combining its rating and episode count.

# Starting the Server

The server runs against a local SQLite file by default:

	SESSION_SECRET=changeme go run main.go

Or against PostgreSQL with flags:

	go run main.go -t postgres -d "postgres://..." -session-secret changeme

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): Secret for signing session tokens

Optional settings:

  - PORT (-p): Server port (default: 3324)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: anime.db for sqlite)
  - SESSION_TTL_HOURS (-session-ttl): Session lifetime (default: 24)

A .env file in the working directory is loaded on startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, anime records, scoring)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Auth guard, CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Password hashing and session tokens
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
