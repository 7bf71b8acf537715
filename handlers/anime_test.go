package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cs4241-c25/a4-adequatej/middleware"
	"github.com/cs4241-c25/a4-adequatej/models"
	"github.com/cs4241-c25/a4-adequatej/testutil"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

func TestCreateAnime(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAnimeHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "me@example.com", "secret")
	token := testutil.SessionFor(t, cfg, userID, "me@example.com")
	wrapped := middleware.RequireAuth(cfg, handler.Create)

	tests := []struct {
		name           string
		body           interface{}
		token          string
		expectedStatus int
	}{
		{
			name: "valid record",
			body: models.AnimeRequest{
				Title: "Cowboy Bebop", Rating: floatPtr(9.5), Episodes: intPtr(26),
				ImageURL: strPtr("https://example.com/bebop.jpg"),
			},
			token:          token,
			expectedStatus: http.StatusCreated,
		},
		{
			name: "no image url",
			body: models.AnimeRequest{
				Title: "FLCL", Rating: floatPtr(8), Episodes: intPtr(6),
			},
			token:          token,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			body:           models.AnimeRequest{Rating: floatPtr(8), Episodes: intPtr(12)},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing rating",
			body:           models.AnimeRequest{Title: "Untitled", Episodes: intPtr(12)},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing episodes",
			body:           models.AnimeRequest{Title: "Untitled", Rating: floatPtr(8)},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero episodes",
			body:           models.AnimeRequest{Title: "Untitled", Rating: floatPtr(8), Episodes: intPtr(0)},
			token:          token,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no session",
			body: models.AnimeRequest{
				Title: "Akira", Rating: floatPtr(9), Episodes: intPtr(1),
			},
			token:          "",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.token != "" {
				req = testutil.AuthedRequest("POST", "/anime", tt.body, tt.token)
			} else {
				req = testutil.MakeRequest("POST", "/anime", tt.body, nil)
			}
			w := httptest.NewRecorder()

			wrapped(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var record models.Anime
				testutil.AssertJSON(t, w, &record)

				if record.ID == "" {
					t.Error("expected a generated record ID")
				}
				body := tt.body.(models.AnimeRequest)
				want := PopularityScore(*body.Rating, *body.Episodes)
				if math.Abs(record.PopularityScore-want) > 1e-9 {
					t.Errorf("popularityScore = %v, want %v", record.PopularityScore, want)
				}
				if record.CreatedAt.IsZero() {
					t.Error("expected createdAt to be set")
				}
				if record.UpdatedAt != nil {
					t.Error("fresh record should have no updatedAt")
				}
			}
		})
	}
}

func TestListAnime(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAnimeHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "me@example.com", "secret")
	otherID := testutil.CreateTestUser(t, conn, "other@example.com", "secret")
	token := testutil.SessionFor(t, cfg, userID, "me@example.com")

	// Inserted out of score order on purpose
	testutil.AddTestAnime(t, conn, userID, "Mid Show", 5, 12, 38.6)
	testutil.AddTestAnime(t, conn, userID, "Top Show", 10, 100, 100)
	testutil.AddTestAnime(t, conn, userID, "Low Show", 2, 6, 15.8)
	testutil.AddTestAnime(t, conn, otherID, "Not Mine", 9, 24, 70)

	wrapped := middleware.RequireAuth(cfg, handler.List)
	req := testutil.AuthedRequest("GET", "/anime", nil, token)
	w := httptest.NewRecorder()

	wrapped(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ListAnimeResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Count != 3 {
		t.Fatalf("count = %d, want 3 (other users' records must not leak)", resp.Count)
	}

	wantOrder := []string{"Top Show", "Mid Show", "Low Show"}
	for i, want := range wantOrder {
		if resp.Anime[i].Title != want {
			t.Errorf("position %d = %s, want %s", i, resp.Anime[i].Title, want)
		}
	}

	// Descending by score
	for i := 1; i < len(resp.Anime); i++ {
		if resp.Anime[i].PopularityScore > resp.Anime[i-1].PopularityScore {
			t.Errorf("list not sorted by popularityScore descending at %d", i)
		}
	}

	for _, entry := range resp.Anime {
		if entry.Added == "" {
			t.Errorf("entry %s missing humanized added age", entry.Title)
		}
	}
}

func TestListAnimeEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAnimeHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "me@example.com", "secret")
	token := testutil.SessionFor(t, cfg, userID, "me@example.com")

	wrapped := middleware.RequireAuth(cfg, handler.List)
	req := testutil.AuthedRequest("GET", "/anime", nil, token)
	w := httptest.NewRecorder()

	wrapped(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ListAnimeResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 0 || len(resp.Anime) != 0 {
		t.Errorf("expected an empty list, got %+v", resp)
	}
}

func TestGetAnime(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAnimeHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "me@example.com", "secret")
	otherID := testutil.CreateTestUser(t, conn, "other@example.com", "secret")
	token := testutil.SessionFor(t, cfg, userID, "me@example.com")

	mineID := testutil.AddTestAnime(t, conn, userID, "Mine", 8, 24, 63.2)
	theirsID := testutil.AddTestAnime(t, conn, otherID, "Theirs", 8, 24, 63.2)

	wrapped := middleware.RequireAuth(cfg, handler.Get)

	tests := []struct {
		name           string
		animeID        string
		expectedStatus int
	}{
		{"own record", mineID, http.StatusOK},
		{"someone else's record", theirsID, http.StatusNotFound},
		{"nonexistent id", "no-such-id", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.AuthedRequest("GET", "/anime/"+tt.animeID, nil, token)
			req.SetPathValue("id", tt.animeID)
			w := httptest.NewRecorder()

			wrapped(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var record models.Anime
				testutil.AssertJSON(t, w, &record)
				if record.ID != mineID || record.Title != "Mine" {
					t.Errorf("got %+v, want own record", record)
				}
			}
		})
	}
}

// Not-found and not-yours must produce identical responses.
func TestGetAnimeOwnershipDoesNotLeak(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAnimeHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "me@example.com", "secret")
	otherID := testutil.CreateTestUser(t, conn, "other@example.com", "secret")
	token := testutil.SessionFor(t, cfg, userID, "me@example.com")
	theirsID := testutil.AddTestAnime(t, conn, otherID, "Theirs", 8, 24, 63.2)

	wrapped := middleware.RequireAuth(cfg, handler.Get)

	var bodies []string
	for _, animeID := range []string{theirsID, "completely-absent"} {
		req := testutil.AuthedRequest("GET", "/anime/"+animeID, nil, token)
		req.SetPathValue("id", animeID)
		w := httptest.NewRecorder()
		wrapped(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
		bodies = append(bodies, w.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Errorf("not-yours and not-found responses differ:\n%s\n%s", bodies[0], bodies[1])
	}
}

func TestUpdateAnime(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAnimeHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "me@example.com", "secret")
	otherID := testutil.CreateTestUser(t, conn, "other@example.com", "secret")
	token := testutil.SessionFor(t, cfg, userID, "me@example.com")

	mineID := testutil.AddTestAnime(t, conn, userID, "Before", 5, 12, 38.6)
	theirsID := testutil.AddTestAnime(t, conn, otherID, "Theirs", 5, 12, 38.6)

	wrapped := middleware.RequireAuth(cfg, handler.Update)

	t.Run("full update recomputes score", func(t *testing.T) {
		var before models.Anime
		if err := conn.QueryRow(
			"SELECT id, created_at FROM anime WHERE id = $1", mineID,
		).Scan(&before.ID, &before.CreatedAt); err != nil {
			t.Fatalf("failed to read original record: %v", err)
		}

		body := models.AnimeRequest{Title: "After", Rating: floatPtr(9), Episodes: intPtr(50)}
		req := testutil.AuthedRequest("PATCH", "/anime/"+mineID, body, token)
		req.SetPathValue("id", mineID)
		w := httptest.NewRecorder()

		wrapped(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var record models.Anime
		testutil.AssertJSON(t, w, &record)

		if record.Title != "After" {
			t.Errorf("title = %s, want After", record.Title)
		}
		want := PopularityScore(9, 50)
		if math.Abs(record.PopularityScore-want) > 1e-9 {
			t.Errorf("popularityScore = %v, want %v", record.PopularityScore, want)
		}
		if record.UpdatedAt == nil {
			t.Error("expected updatedAt to be set")
		}
		if !record.CreatedAt.Equal(before.CreatedAt) {
			t.Errorf("createdAt changed on update: %v != %v", record.CreatedAt, before.CreatedAt)
		}
	})

	t.Run("someone else's record", func(t *testing.T) {
		body := models.AnimeRequest{Title: "Hijack", Rating: floatPtr(1), Episodes: intPtr(1)}
		req := testutil.AuthedRequest("PATCH", "/anime/"+theirsID, body, token)
		req.SetPathValue("id", theirsID)
		w := httptest.NewRecorder()

		wrapped(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)

		// The record must be untouched
		var title string
		if err := conn.QueryRow("SELECT title FROM anime WHERE id = $1", theirsID).Scan(&title); err != nil {
			t.Fatalf("failed to re-read record: %v", err)
		}
		if title != "Theirs" {
			t.Errorf("foreign record was modified: title = %s", title)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		body := models.AnimeRequest{Title: "Partial"}
		req := testutil.AuthedRequest("PATCH", "/anime/"+mineID, body, token)
		req.SetPathValue("id", mineID)
		w := httptest.NewRecorder()

		wrapped(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("nonexistent id", func(t *testing.T) {
		body := models.AnimeRequest{Title: "Ghost", Rating: floatPtr(5), Episodes: intPtr(12)}
		req := testutil.AuthedRequest("PATCH", "/anime/no-such-id", body, token)
		req.SetPathValue("id", "no-such-id")
		w := httptest.NewRecorder()

		wrapped(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestDeleteAnime(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAnimeHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "me@example.com", "secret")
	otherID := testutil.CreateTestUser(t, conn, "other@example.com", "secret")
	token := testutil.SessionFor(t, cfg, userID, "me@example.com")

	mineID := testutil.AddTestAnime(t, conn, userID, "Mine", 8, 24, 63.2)
	theirsID := testutil.AddTestAnime(t, conn, otherID, "Theirs", 8, 24, 63.2)

	wrappedDelete := middleware.RequireAuth(cfg, handler.Delete)
	wrappedList := middleware.RequireAuth(cfg, handler.List)

	t.Run("own record", func(t *testing.T) {
		req := testutil.AuthedRequest("DELETE", "/anime/"+mineID, nil, token)
		req.SetPathValue("id", mineID)
		w := httptest.NewRecorder()

		wrappedDelete(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.DeleteAnimeResponse
		testutil.AssertJSON(t, w, &resp)
		if !resp.Success {
			t.Error("expected success true")
		}

		// Gone from subsequent lists
		listReq := testutil.AuthedRequest("GET", "/anime", nil, token)
		lw := httptest.NewRecorder()
		wrappedList(lw, listReq)
		var list models.ListAnimeResponse
		testutil.AssertJSON(t, lw, &list)
		if list.Count != 0 {
			t.Errorf("deleted record still listed: %+v", list)
		}
	})

	t.Run("delete twice", func(t *testing.T) {
		req := testutil.AuthedRequest("DELETE", "/anime/"+mineID, nil, token)
		req.SetPathValue("id", mineID)
		w := httptest.NewRecorder()

		wrappedDelete(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("someone else's record", func(t *testing.T) {
		req := testutil.AuthedRequest("DELETE", "/anime/"+theirsID, nil, token)
		req.SetPathValue("id", theirsID)
		w := httptest.NewRecorder()

		wrappedDelete(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)

		var count int
		if err := conn.QueryRow("SELECT COUNT(*) FROM anime WHERE id = $1", theirsID).Scan(&count); err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if count != 1 {
			t.Error("foreign record was deleted")
		}
	})
}
