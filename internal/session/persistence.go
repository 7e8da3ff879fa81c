package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// RecordName is the single persisted record holding the session snapshot.
const RecordName = "auth-storage"

// FilePersistence stores the snapshot as a JSON file in a directory,
// the terminal-local equivalent of browser storage.
type FilePersistence struct {
	dir string
}

func NewFilePersistence(dir string) *FilePersistence {
	return &FilePersistence{dir: dir}
}

func (f *FilePersistence) path() string {
	return filepath.Join(f.dir, RecordName+".json")
}

func (f *FilePersistence) Load() (Snapshot, bool, error) {
	data, err := os.ReadFile(f.path())
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (f *FilePersistence) Save(snap Snapshot) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path(), data, 0o600)
}

func (f *FilePersistence) Clear() error {
	err := os.Remove(f.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryPersistence keeps the snapshot in memory only. Used by tests and as
// a fallback when no storage directory is configured.
type MemoryPersistence struct {
	snap Snapshot
	set  bool
}

func NewMemoryPersistence() *MemoryPersistence { return &MemoryPersistence{} }

func (m *MemoryPersistence) Load() (Snapshot, bool, error) { return m.snap, m.set, nil }

func (m *MemoryPersistence) Save(snap Snapshot) error {
	m.snap = snap
	m.set = true
	return nil
}

func (m *MemoryPersistence) Clear() error {
	m.snap = Snapshot{}
	m.set = false
	return nil
}
