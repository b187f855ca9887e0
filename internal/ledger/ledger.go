// Package ledger persists accepted overtime entries in a single JSON
// file slot with write-through semantics: every mutation rewrites the
// persisted copy before it is considered applied.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jrequejo/horex/internal/model"
)

// fileName is the single persisted slot inside the data directory.
const fileName = "ledger.json"

// Store is the ordered, append-mostly collection of accepted entries.
// Insertion order is significant: display and export order follow it.
type Store struct {
	path    string
	entries []model.OvertimeEntry
}

// Open loads the persisted ledger from dir. A missing file yields an
// empty ledger, not an error. A corrupt file is backed up alongside
// with a .corrupt suffix and reported.
func Open(dir string) (*Store, error) {
	path := filepath.Join(dir, fileName)
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return nil, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	return s, nil
}

// Append adds e to the end of the ledger and persists. On a failed
// write the in-memory state is rolled back so memory and disk never
// diverge.
func (s *Store) Append(e model.OvertimeEntry) error {
	s.entries = append(s.entries, e)
	if err := s.persist(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return err
	}
	return nil
}

// List returns the entries in insertion order. The slice is a copy;
// the ledger itself is mutated only through Append, DeleteMatching
// and Clear.
func (s *Store) List() []model.OvertimeEntry {
	out := make([]model.OvertimeEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// DeleteMatching removes the first entry whose full field tuple equals
// e and persists. It reports whether a match was found; no match is a
// no-op, not an error. The removal is rolled back on a failed write.
func (s *Store) DeleteMatching(e model.OvertimeEntry) (bool, error) {
	for i, existing := range s.entries {
		if existing != e {
			continue
		}
		orig := s.entries
		trimmed := make([]model.OvertimeEntry, 0, len(orig)-1)
		trimmed = append(trimmed, orig[:i]...)
		trimmed = append(trimmed, orig[i+1:]...)
		s.entries = trimmed
		if err := s.persist(); err != nil {
			s.entries = orig
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Clear empties the ledger and removes the persisted slot entirely
// rather than writing an empty sequence. Memory is cleared only after
// the file is gone.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage error removing %s: %w", s.path, err)
	}
	s.entries = nil
	return nil
}

// persist atomically writes the full ledger: temp file then rename.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
