// Package store is a file store rooted at the site output directory.
// Every artifact the builder produces goes through it, so tests can
// point Root at a temp dir and inspect what was written.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

type ArtifactStore struct {
	Root string // e.g. "dist"
}

func NewArtifactStore(root string) *ArtifactStore {
	return &ArtifactStore{Root: root}
}

func (s *ArtifactStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *ArtifactStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// WriteRaw writes body to rel, creating parent directories as needed.
func (s *ArtifactStore) WriteRaw(rel string, body []byte) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, body, 0o644)
}

// WriteJSON writes v to rel as indented JSON with a trailing newline.
func (s *ArtifactStore) WriteJSON(rel string, v any) error {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return s.WriteRaw(rel, buf.Bytes())
}

func (s *ArtifactStore) ReadRaw(rel string) ([]byte, error) {
	return os.ReadFile(s.Path(rel))
}
