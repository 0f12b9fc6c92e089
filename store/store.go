package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoSave        = errors.New("no saved game found")
	ErrFnCorruptSave = func(path string, err error) error {
		return fmt.Errorf("saved game \"%s\" is unusable: %w", path, err)
	}
)

// SaveStore keeps the one saved round
type SaveStore interface {
	Save(snapshot Snapshot) error
	Load() (Snapshot, error)
}

// FileStore keeps the saved round in a YAML file
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Save overwrites any previous save
func (s *FileStore) Save(snapshot Snapshot) error {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return err
	}

	// written beside the target then renamed into place
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Load reads and validates the saved round
func (s *FileStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Snapshot{}, ErrNoSave
	}
	if err != nil {
		return Snapshot{}, err
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, ErrFnCorruptSave(s.path, err)
	}
	if err := snapshot.Validate(); err != nil {
		return Snapshot{}, ErrFnCorruptSave(s.path, err)
	}
	return snapshot, nil
}

// InMemoryStore keeps the saved round in memory.
// Saves counts every call to Save.
type InMemoryStore struct {
	mu       sync.Mutex
	snapshot *Snapshot
	Saves    int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Save overwrites any previous save
func (s *InMemoryStore) Save(snapshot Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = &snapshot
	s.Saves++
	return nil
}

func (s *InMemoryStore) Load() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return Snapshot{}, ErrNoSave
	}
	if err := s.snapshot.Validate(); err != nil {
		return Snapshot{}, err
	}
	return *s.snapshot, nil
}
