// Package standings folds match facts into a ranked league table.
package standings

import (
	"sort"

	"github.com/mosheDeveloper/league-standings/internal/match"
)

// TeamStats accumulates one team's record across all facts that mention
// it. GoalDiff and Points are derived on demand rather than stored, so
// they can never drift from the counters they are computed from.
type TeamStats struct {
	Team         string
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
}

// GoalDiff is GoalsFor minus GoalsAgainst.
func (s *TeamStats) GoalDiff() int {
	return s.GoalsFor - s.GoalsAgainst
}

// Points applies the 3/1/0 rule to the win and draw counts.
func (s *TeamStats) Points() int {
	return s.Won*3 + s.Drawn
}

// Row is one team's line in the final table, snapshot at the end of
// aggregation.
type Row struct {
	Rank         int    `json:"rank"`
	Team         string `json:"team"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"gf"`
	GoalsAgainst int    `json:"ga"`
	GoalDiff     int    `json:"gd"`
	Points       int    `json:"points"`
}

// Table aggregates facts into a ranked standings table. Every team named
// by a fact gets a row; roster names (may be nil) get zero-stat rows even
// when they never played, so a pre-season table still lists the league.
//
// Sort order is Points desc, goal difference desc, goals for desc, then
// team name asc. The name key makes the order strict, so ranks run 1..N
// with no shared positions. An empty input yields an empty table.
func Table(facts []match.Fact, roster []string) ([]Row, map[string]*TeamStats) {
	stats := make(map[string]*TeamStats)
	ensure := func(team string) *TeamStats {
		s, ok := stats[team]
		if !ok {
			s = &TeamStats{Team: team}
			stats[team] = s
		}
		return s
	}

	for _, name := range roster {
		ensure(name)
	}

	for _, f := range facts {
		home := ensure(f.HomeTeam)
		away := ensure(f.AwayTeam)

		home.Played++
		away.Played++
		home.GoalsFor += f.HomeGoals
		home.GoalsAgainst += f.AwayGoals
		away.GoalsFor += f.AwayGoals
		away.GoalsAgainst += f.HomeGoals

		switch {
		case f.HomeGoals > f.AwayGoals:
			home.Won++
			away.Lost++
		case f.HomeGoals < f.AwayGoals:
			away.Won++
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
		}
	}

	rows := make([]Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, Row{
			Team:         s.Team,
			Played:       s.Played,
			Won:          s.Won,
			Drawn:        s.Drawn,
			Lost:         s.Lost,
			GoalsFor:     s.GoalsFor,
			GoalsAgainst: s.GoalsAgainst,
			GoalDiff:     s.GoalDiff(),
			Points:       s.Points(),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDiff != rows[j].GoalDiff {
			return rows[i].GoalDiff > rows[j].GoalDiff
		}
		if rows[i].GoalsFor != rows[j].GoalsFor {
			return rows[i].GoalsFor > rows[j].GoalsFor
		}
		return rows[i].Team < rows[j].Team
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows, stats
}
