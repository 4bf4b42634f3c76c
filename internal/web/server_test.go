package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mosheDeveloper/league-standings/internal/match"
	"github.com/mosheDeveloper/league-standings/internal/site"
	"github.com/mosheDeveloper/league-standings/internal/standings"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	hub := NewHub()
	go hub.Run()
	return NewServer(":0", dir, hub), dir
}

func TestHandleHealth(t *testing.T) {
	srv, _ := testServer(t)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, httptest.NewRequest("GET", "/api/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("health status: %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("health body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health body: %v", body)
	}
}

func TestHandleStandings_BeforeAndAfterBuild(t *testing.T) {
	srv, _ := testServer(t)
	router := srv.Router()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/standings", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("before build: status %d, want 503", rr.Code)
	}

	srv.SetResult(&site.Result{
		BuildID:     "test-build",
		GeneratedAt: "2026-01-01T00:00:00Z",
		Standings: []standings.Row{
			{Rank: 1, Team: "Ironi", Played: 1, Won: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDiff: 1, Points: 3},
		},
		Matches: []match.Fact{
			{Round: 1, HomeTeam: "Ironi", AwayTeam: "Hapoel", HomeGoals: 2, AwayGoals: 1},
		},
	})

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/standings", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("after build: status %d", rr.Code)
	}
	var body struct {
		BuildID   string          `json:"build_id"`
		Standings []standings.Row `json:"standings"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("standings body: %v", err)
	}
	if body.BuildID != "test-build" || len(body.Standings) != 1 || body.Standings[0].Team != "Ironi" {
		t.Errorf("standings body: %+v", body)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/matches", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("matches: status %d", rr.Code)
	}
	var matches struct {
		Matches []match.Fact `json:"matches"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &matches); err != nil {
		t.Fatalf("matches body: %v", err)
	}
	if len(matches.Matches) != 1 || matches.Matches[0].HomeTeam != "Ironi" {
		t.Errorf("matches body: %+v", matches)
	}
}

func TestStaticFiles(t *testing.T) {
	srv, dir := testServer(t)
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>table</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("static status: %d", rr.Code)
	}
	if got := rr.Body.String(); got != "<h1>table</h1>" {
		t.Errorf("static body: %q", got)
	}
}
