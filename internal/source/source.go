// Package source reads raw result rows and team rosters from disk.
//
// Two game-file formats are supported: a delimited file with a header
// row, and a JSON array of objects. Either way the output is untyped
// RawRows; deciding which rows
// actually count is the validator's job, not the reader's.
package source

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mosheDeveloper/league-standings/internal/match"
)

// ReadGames loads raw rows from path, picking the format by extension:
// ".json" is parsed as an array of objects, anything else as a delimited
// file. comma is the delimiter for the latter (0 means ',').
func ReadGames(path string, comma rune) ([]match.RawRow, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadGamesJSON(path)
	}
	return ReadGamesCSV(path, comma)
}

// ReadGamesCSV reads a delimited file whose first record is the header.
// The header must declare every required column; extra columns are kept
// in the rows but ignored downstream.
func ReadGamesCSV(path string, comma rune) ([]match.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open games file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if comma != 0 {
		r.Comma = comma
	}
	// Rows with trailing blank cells are common in hand-edited files.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: empty file, no header row", path)
	}

	header := make([]string, len(records[0]))
	for i, c := range records[0] {
		header[i] = strings.TrimSpace(c)
	}
	if err := match.CheckHeader(header); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows := make([]match.RawRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(match.RawRow, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadGamesJSON reads an array of objects. Object keys are the column
// names; the union of keys across all objects forms the header, so a
// column omitted from every object is treated as missing.
func ReadGamesJSON(path string) ([]match.RawRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open games file: %w", err)
	}
	var objects []map[string]any
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	seen := make(map[string]bool)
	rows := make([]match.RawRow, 0, len(objects))
	for _, obj := range objects {
		row := make(match.RawRow, len(obj))
		for k, v := range obj {
			k = strings.TrimSpace(k)
			seen[k] = true
			row[k] = stringify(v)
		}
		rows = append(rows, row)
	}

	header := make([]string, 0, len(seen))
	for k := range seen {
		header = append(header, k)
	}
	if err := match.CheckHeader(header); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadRoster loads the optional teams file: a JSON array of objects with
// a Team field. Names are trimmed and blanks dropped. A file whose
// objects never carry a Team field is structurally broken.
func ReadRoster(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open teams file: %w", err)
	}
	var objects []map[string]any
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	hasField := false
	teams := make([]string, 0, len(objects))
	for _, obj := range objects {
		v, ok := obj["Team"]
		if !ok {
			continue
		}
		hasField = true
		name := strings.TrimSpace(stringify(v))
		if name != "" {
			teams = append(teams, name)
		}
	}
	if len(objects) > 0 && !hasField {
		return nil, fmt.Errorf("%s: missing required field: Team", path)
	}
	return teams, nil
}

// stringify renders a decoded JSON scalar the way it appeared in the
// source. null becomes the empty string, i.e. an absent cell.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
