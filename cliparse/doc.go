/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3324)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (default: anime.db for sqlite)
  - SessionSecret: Secret for signing session tokens (required)
  - SessionTTL: Session token lifetime (default: 24h)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-session-secret Session signing secret
	-session-ttl    Session lifetime in hours

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	SESSION_SECRET    → -session-secret
	SESSION_TTL_HOURS → -session-ttl

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - SESSION_SECRET must be provided
  - DATABASE_URL must be provided when the type is postgres
  - DATABASE_TYPE must be sqlite or postgres

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
