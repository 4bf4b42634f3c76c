// Package site builds the static standings site: one pass from the games
// file to index.html, standings.csv and standings.json in the output
// directory. Each Build call is independent; nothing is carried between
// runs.
package site

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mosheDeveloper/league-standings/internal/config"
	"github.com/mosheDeveloper/league-standings/internal/match"
	"github.com/mosheDeveloper/league-standings/internal/source"
	"github.com/mosheDeveloper/league-standings/internal/standings"
	"github.com/mosheDeveloper/league-standings/internal/store"
)

// Result is one finished build: the computed tables plus metadata for
// the page footer and the JSON artifact.
type Result struct {
	BuildID     string          `json:"build_id"`
	GeneratedAt string          `json:"generated_at_utc"`
	Title       string          `json:"title"`
	Standings   []standings.Row `json:"standings"`
	Matches     []match.Fact    `json:"matches"`
}

// Build runs the whole pipeline and writes the three artifacts. The
// returned Result is the same data the artifacts were rendered from.
func Build(cfg config.Config) (*Result, error) {
	rows, err := source.ReadGames(cfg.GamesPath, cfg.Comma())
	if err != nil {
		return nil, err
	}

	var roster []string
	if cfg.TeamsPath != "" {
		roster, err = source.ReadRoster(cfg.TeamsPath)
		if err != nil {
			return nil, err
		}
	}

	facts := match.ParseRows(rows)
	table, _ := standings.Table(facts, roster)

	res := &Result{
		BuildID:     uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Title:       cfg.SiteTitle,
		Standings:   table,
		Matches:     facts,
	}

	st := store.NewArtifactStore(cfg.OutDir)

	html, err := renderIndex(res)
	if err != nil {
		return nil, fmt.Errorf("render index.html: %w", err)
	}
	if err := st.WriteRaw("index.html", html); err != nil {
		return nil, fmt.Errorf("write index.html: %w", err)
	}
	if err := st.WriteRaw("standings.csv", standingsCSV(table)); err != nil {
		return nil, fmt.Errorf("write standings.csv: %w", err)
	}
	if err := st.WriteJSON("standings.json", res); err != nil {
		return nil, fmt.Errorf("write standings.json: %w", err)
	}

	return res, nil
}

func standingsCSV(table []standings.Row) []byte {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	w.Write([]string{"Rank", "Team", "Played", "Won", "Drawn", "Lost", "GF", "GA", "GD", "Points"})
	for _, r := range table {
		w.Write([]string{
			strconv.Itoa(r.Rank),
			r.Team,
			strconv.Itoa(r.Played),
			strconv.Itoa(r.Won),
			strconv.Itoa(r.Drawn),
			strconv.Itoa(r.Lost),
			strconv.Itoa(r.GoalsFor),
			strconv.Itoa(r.GoalsAgainst),
			strconv.Itoa(r.GoalDiff),
			strconv.Itoa(r.Points),
		})
	}
	w.Flush()
	return buf.Bytes()
}
