package store

import (
	"testing"
)

func TestArtifactStore_RoundTrip(t *testing.T) {
	s := NewArtifactStore(t.TempDir())

	if s.Exists("index.html") {
		t.Fatal("fresh store should be empty")
	}
	if err := s.WriteRaw("index.html", []byte("<html></html>")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !s.Exists("index.html") {
		t.Error("written artifact not visible")
	}
	got, err := s.ReadRaw("index.html")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "<html></html>" {
		t.Errorf("round trip: %q", got)
	}
}

func TestArtifactStore_NestedAndJSON(t *testing.T) {
	s := NewArtifactStore(t.TempDir())

	// Parent directories are created on demand.
	if err := s.WriteJSON("api/standings.json", map[string]int{"teams": 12}); err != nil {
		t.Fatalf("write json: %v", err)
	}
	got, err := s.ReadRaw("api/standings.json")
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	want := "{\n  \"teams\": 12\n}\n"
	if string(got) != want {
		t.Errorf("json artifact: %q, want %q", got, want)
	}
}
