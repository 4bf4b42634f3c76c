package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mosheDeveloper/league-standings/internal/config"
)

func tmpCfg(t *testing.T) (string, config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.GamesPath = filepath.Join(dir, "games.json")
	cfg.OutDir = filepath.Join(dir, "dist")
	cfg.SiteTitle = "Test League"
	return dir, cfg
}

func writeGames(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write games: %v", err)
	}
}

const gamesJSON = `[
  {"Round": 1, "GameInRound": 1, "Date": "2026-01-10", "HomeTeam": "Ironi",
   "AwayTeam": "Hapoel", "HomeGoals": 2, "AwayGoals": 1, "Stadium": "City Arena"},
  {"Round": 1, "GameInRound": 2, "Date": "2026-01-11", "HomeTeam": "Hapoel",
   "AwayTeam": "Ironi", "HomeGoals": 1, "AwayGoals": 1, "Stadium": ""},
  {"Round": 2, "GameInRound": 1, "Date": "", "HomeTeam": "Maccabi",
   "AwayTeam": "Ironi", "HomeGoals": null, "AwayGoals": null, "Stadium": ""}
]`

func TestBuild_Artifacts(t *testing.T) {
	_, cfg := tmpCfg(t)
	writeGames(t, cfg.GamesPath, gamesJSON)

	res, err := Build(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two eligible matches; the Maccabi fixture has no score yet.
	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(res.Matches))
	}
	if len(res.Standings) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(res.Standings))
	}
	// Ironi: W1 D1 GF3 GA2 Pts4; Hapoel: D1 L1 GF2 GA3 Pts1.
	if res.Standings[0].Team != "Ironi" || res.Standings[0].Points != 4 {
		t.Errorf("top row: %+v", res.Standings[0])
	}
	if res.BuildID == "" || res.GeneratedAt == "" {
		t.Error("build metadata missing")
	}

	html, err := os.ReadFile(filepath.Join(cfg.OutDir, "index.html"))
	if err != nil {
		t.Fatalf("index.html not written: %v", err)
	}
	page := string(html)
	for _, want := range []string{"Test League", "Ironi", "Hapoel", "standings.csv", res.BuildID} {
		if !strings.Contains(page, want) {
			t.Errorf("index.html missing %q", want)
		}
	}

	csvBytes, err := os.ReadFile(filepath.Join(cfg.OutDir, "standings.csv"))
	if err != nil {
		t.Fatalf("standings.csv not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(csvBytes)), "\n")
	if lines[0] != "Rank,Team,Played,Won,Drawn,Lost,GF,GA,GD,Points" {
		t.Errorf("csv header: %q", lines[0])
	}
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "1,Ironi,2,1,1,0,3,2,1,4") {
		t.Errorf("csv body: %v", lines)
	}

	var decoded Result
	jsonBytes, err := os.ReadFile(filepath.Join(cfg.OutDir, "standings.json"))
	if err != nil {
		t.Fatalf("standings.json not written: %v", err)
	}
	if err := json.Unmarshal(jsonBytes, &decoded); err != nil {
		t.Fatalf("standings.json invalid: %v", err)
	}
	if decoded.BuildID != res.BuildID || len(decoded.Standings) != 2 {
		t.Errorf("standings.json does not round-trip the result")
	}
}

func TestBuild_WithRoster(t *testing.T) {
	dir, cfg := tmpCfg(t)
	writeGames(t, cfg.GamesPath, gamesJSON)
	cfg.TeamsPath = filepath.Join(dir, "teams.json")
	if err := os.WriteFile(cfg.TeamsPath, []byte(`[{"Team":"Ironi"},{"Team":"Beitar"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Build(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Standings) != 3 {
		t.Fatalf("roster team missing: %+v", res.Standings)
	}
	bottom := res.Standings[2]
	if bottom.Team != "Beitar" || bottom.Played != 0 {
		t.Errorf("expected zero-stat Beitar last, got %+v", bottom)
	}
}

func TestBuild_EmptyGames(t *testing.T) {
	_, cfg := tmpCfg(t)
	writeGames(t, cfg.GamesPath, `[]`)

	// No rows at all means no header either, which is a structural error
	// for JSON input only when columns cannot be inferred. An empty
	// array has no keys to check, so it must fail loudly rather than
	// render an empty site from a file that told us nothing.
	if _, err := Build(cfg); err == nil {
		t.Fatal("empty JSON games accepted")
	}
}

func TestBuild_AllFixturesUnplayed(t *testing.T) {
	_, cfg := tmpCfg(t)
	writeGames(t, cfg.GamesPath, `[
	  {"Round": 1, "GameInRound": 1, "Date": "", "HomeTeam": "A",
	   "AwayTeam": "B", "HomeGoals": null, "AwayGoals": null, "Stadium": ""}
	]`)

	res, err := Build(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Matches) != 0 || len(res.Standings) != 0 {
		t.Errorf("expected empty tables, got %d matches, %d rows", len(res.Matches), len(res.Standings))
	}
	if _, err := os.Stat(filepath.Join(cfg.OutDir, "index.html")); err != nil {
		t.Error("empty season should still render a page")
	}
}

func TestBuild_MissingGamesFile(t *testing.T) {
	_, cfg := tmpCfg(t)
	if _, err := Build(cfg); err == nil {
		t.Fatal("missing games file accepted")
	}
}
