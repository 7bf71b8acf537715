/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: email, password
  - LoginRequest: email, password
  - AnimeRequest: title, rating, episodes, imageUrl

AnimeRequest uses pointer fields for rating and episodes so that a
missing field can be told apart from an explicit zero.

# Response Types

Types for JSON responses:

  - SessionResponse: token, user
  - ListAnimeResponse: anime, count
  - DeleteAnimeResponse: success
  - MessageResponse: message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: account record (password hash is never serialized)
  - Anime: tracked show with its derived popularity score
  - AnimeListEntry: Anime plus a humanized "added" age for lists
  - Identity: authenticated caller (user ID + email)

# Constants

Database types:

	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
*/
package models
