package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cs4241-c25/a4-adequatej/auth"
	"github.com/cs4241-c25/a4-adequatej/cliparse"
	"github.com/cs4241-c25/a4-adequatej/db"
	"github.com/cs4241-c25/a4-adequatej/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.Config{
		DatabaseType: models.DBTypeSQLite,
		DatabaseURL:  ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A pooled :memory: database is one database per connection;
	// pin the pool to a single connection so all queries see the schema
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3324,
		DatabaseType:  models.DBTypeSQLite,
		DatabaseURL:   ":memory:",
		SessionSecret: "test-session-secret",
		SessionTTL:    time.Hour,
	}
}

// CreateTestUser inserts an account and returns its ID.
// The password is stored hashed, like the real register path.
func CreateTestUser(t *testing.T, conn *sql.DB, email, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	userID := uuid.NewString()
	_, err = conn.Exec(`
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, email, hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// SessionFor issues a valid session token for a user
func SessionFor(t *testing.T, cfg cliparse.Config, userID, email string) string {
	t.Helper()

	token, err := auth.NewSessionToken(userID, email, cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// AddTestAnime inserts a record for an owner and returns its ID
func AddTestAnime(t *testing.T, conn *sql.DB, ownerID, title string, rating float64, episodes int, score float64) string {
	t.Helper()

	animeID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO anime (id, owner_id, title, rating, episodes, popularity_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, animeID, ownerID, title, rating, episodes, score, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test anime: %v", err)
	}

	return animeID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthedRequest creates a request carrying a session token as a Bearer header
func AuthedRequest(method, path string, body interface{}, token string) *http.Request {
	return MakeRequest(method, path, body, map[string]string{
		"Authorization": "Bearer " + token,
	})
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
