package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store is the append-only session log: a JSON array of SessionRecord on
// disk. Writes are whole-file read-modify-write with no cross-process
// locking; concurrent writers to the same path race (last writer wins).
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// DefaultPath returns the log location under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pingline", "history.json"), nil
}

// Append adds rec to the end of the persisted collection and rewrites
// the file. A missing, empty, or malformed store is treated as empty
// rather than an error, so a corrupted log heals on the next run.
func (s *Store) Append(rec SessionRecord) error {
	records := s.load()
	records = append(records, rec)

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// List returns all persisted records, oldest first.
func (s *Store) List() []SessionRecord {
	return s.load()
}

func (s *Store) load() []SessionRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var records []SessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Unparsable or not an array; start over.
		return nil
	}
	return records
}
