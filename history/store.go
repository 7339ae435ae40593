// Package history keeps a bounded, most-recent-first log of past generations
// in a single JSON file under the log directory.
package history

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// maxEntries caps the persisted log; the oldest entry is evicted on overflow.
const maxEntries = 100

// Entry records one past generation. Entries are immutable once appended.
type Entry struct {
	Intent   string `json:"intent"`
	Filename string `json:"filename"`
	Time     string `json:"time"`
	Model    string `json:"model"`
}

// Store persists entries to <dir>/history.json. Appends are serialized by a
// mutex so concurrent generations cannot lose each other's snapshot.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, "history.json")}
}

// Load returns the persisted log, newest first. History is auxiliary state:
// a missing or unparsable file yields an empty log, never an error.
func (s *Store) Load() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[history] read failed, starting empty: %v", err)
		}
		return []Entry{}
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("[history] parse failed, starting empty: %v", err)
		return []Entry{}
	}
	return entries
}

// Append inserts entry at the front, truncates to the most recent hundred,
// and rewrites the file atomically via a temp file + rename.
func (s *Store) Append(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append([]Entry{entry}, s.load()...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
