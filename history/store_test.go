package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	s := New(t.TempDir())
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty log, got %d entries", len(got))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "history.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(dir)
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty log on corrupt file, got %d entries", len(got))
	}
}

func TestAppendNewestFirst(t *testing.T) {
	s := New(t.TempDir())
	for i := 0; i < 3; i++ {
		if err := s.Append(Entry{Intent: fmt.Sprintf("action-%d", i)}); err != nil {
			t.Fatal(err)
		}
	}
	got := s.Load()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, want := range []string{"action-2", "action-1", "action-0"} {
		if got[i].Intent != want {
			t.Fatalf("entry %d = %q, want %q", i, got[i].Intent, want)
		}
	}
}

func TestAppendEvictsBeyondCap(t *testing.T) {
	s := New(t.TempDir())
	for i := 0; i <= maxEntries; i++ {
		if err := s.Append(Entry{Intent: fmt.Sprintf("action-%d", i)}); err != nil {
			t.Fatal(err)
		}
	}
	got := s.Load()
	if len(got) != maxEntries {
		t.Fatalf("expected %d entries, got %d", maxEntries, len(got))
	}
	if got[0].Intent != fmt.Sprintf("action-%d", maxEntries) {
		t.Fatalf("newest entry = %q", got[0].Intent)
	}
	if got[maxEntries-1].Intent != "action-1" {
		t.Fatalf("oldest kept entry = %q, action-0 should be evicted", got[maxEntries-1].Intent)
	}
}
