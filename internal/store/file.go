package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each slot as a pretty-printed JSON array file under a
// data directory (vendors.json, purchases.json, ...). This is the
// production default backing.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Init creates the data directory and an empty array file for any slot
// that does not exist yet.
func (s *FileStore) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	for _, kind := range Kinds {
		path := s.path(kind)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("init slot %s: %w", kind, err)
		}
	}
	return nil
}

// Load reads the slot file into out. A missing, unreadable, or corrupt
// file leaves out untouched: the caller sees an empty slot.
func (s *FileStore) Load(_ context.Context, kind string, out any) error {
	data, err := os.ReadFile(s.path(kind))
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil
	}
	return nil
}

// Save writes the slot to a temp file in the same directory and renames
// it over the slot file, so readers never observe a partial write.
func (s *FileStore) Save(_ context.Context, kind string, in any) error {
	data, err := json.MarshalIndent(in, "", "    ")
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", kind, err)
	}
	tmp, err := os.CreateTemp(s.dir, kind+"-*.json")
	if err != nil {
		return fmt.Errorf("save slot %s: %w", kind, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save slot %s: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save slot %s: %w", kind, err)
	}
	if err := os.Rename(tmp.Name(), s.path(kind)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save slot %s: %w", kind, err)
	}
	return nil
}

func (s *FileStore) path(kind string) string {
	return filepath.Join(s.dir, kind+".json")
}
