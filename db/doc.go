/*
Package db handles driver selection and database schema creation.

# Opening a Database

Open picks the driver from the configuration:

	conn, err := db.Open(cfg)

DatabaseType "sqlite" uses the pure-Go modernc.org/sqlite driver
(local files or :memory:), "postgres" uses lib/pq. For sqlite the
foreign_keys pragma is enabled on open.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes.

# Tables

The schema includes:

  - users: Account records with bcrypt password hashes
  - anime: Tracked shows, one row per record per owner

# Relationships

	users 1──* anime

The anime foreign key uses ON DELETE CASCADE.

# Portability

Statements use $1-style parameters and avoid dialect-specific column
defaults (no NOW()); all timestamps are bound from Go. This keeps one
schema and one query set valid for both drivers.

# Indexes

Performance indexes on:

  - users.email (unique)
  - anime.owner_id
  - anime.(owner_id, popularity_score) for the sorted list query
*/
package db
