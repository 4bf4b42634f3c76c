// Package match validates and normalizes raw result rows into match facts.
//
// A RawRow is whatever the source file gave us: every field is optional,
// untyped text. A Fact exists only for rows where both team names and both
// goal counts survived a strict parse; everything else is treated as a
// future or incomplete fixture and skipped.
package match

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names expected in the source header. Unknown extra columns are
// ignored by the readers; missing ones are fatal (see CheckHeader).
const (
	FieldRound       = "Round"
	FieldGameInRound = "GameInRound"
	FieldDate        = "Date"
	FieldHomeTeam    = "HomeTeam"
	FieldAwayTeam    = "AwayTeam"
	FieldHomeGoals   = "HomeGoals"
	FieldAwayGoals   = "AwayGoals"
	FieldStadium     = "Stadium"
)

// RequiredColumns lists every column the source header must declare,
// even when individual cells are blank.
var RequiredColumns = []string{
	FieldRound,
	FieldGameInRound,
	FieldDate,
	FieldHomeTeam,
	FieldAwayTeam,
	FieldHomeGoals,
	FieldAwayGoals,
	FieldStadium,
}

// RawRow is one untyped source record, keyed by field name.
type RawRow map[string]string

// Fact is a validated, immutable record of one played match.
// Round and GameInRound are 0 when the source value was absent or not a
// positive integer; they are informational only and never affect
// eligibility.
type Fact struct {
	Round       int    `json:"round"`
	GameInRound int    `json:"game_in_round"`
	Date        string `json:"date"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	HomeGoals   int    `json:"home_goals"`
	AwayGoals   int    `json:"away_goals"`
	Stadium     string `json:"stadium"`
}

// CheckHeader verifies that every required column is present. The error
// names the first missing column so the source file can be fixed.
func CheckHeader(cols []string) error {
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		seen[strings.TrimSpace(c)] = true
	}
	for _, want := range RequiredColumns {
		if !seen[want] {
			return fmt.Errorf("missing required column: %s", want)
		}
	}
	return nil
}

// ParseRows converts raw rows into facts, preserving the relative order
// of the rows that pass validation. Ineligible rows are dropped silently:
// a blank or unparseable goal count just means the fixture has not been
// played yet.
func ParseRows(rows []RawRow) []Fact {
	facts := make([]Fact, 0, len(rows))
	for _, r := range rows {
		if f, ok := parseRow(r); ok {
			facts = append(facts, f)
		}
	}
	return facts
}

func parseRow(r RawRow) (Fact, bool) {
	home := strings.TrimSpace(r[FieldHomeTeam])
	away := strings.TrimSpace(r[FieldAwayTeam])
	if home == "" || away == "" {
		return Fact{}, false
	}
	// A team cannot play itself; such a row is data entry noise, not a result.
	if home == away {
		return Fact{}, false
	}

	hg, ok := parseGoals(r[FieldHomeGoals])
	if !ok {
		return Fact{}, false
	}
	ag, ok := parseGoals(r[FieldAwayGoals])
	if !ok {
		return Fact{}, false
	}

	return Fact{
		Round:       parsePositive(r[FieldRound]),
		GameInRound: parsePositive(r[FieldGameInRound]),
		Date:        strings.TrimSpace(r[FieldDate]),
		HomeTeam:    home,
		AwayTeam:    away,
		HomeGoals:   hg,
		AwayGoals:   ag,
		Stadium:     strings.TrimSpace(r[FieldStadium]),
	}, true
}

// parseGoals accepts only a strict base-10 non-negative integer.
// "2.5", "two", "" and "-1" all disqualify the row.
func parseGoals(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parsePositive returns the value when it is a positive integer and the
// sentinel 0 otherwise.
func parsePositive(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
