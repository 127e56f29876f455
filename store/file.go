// Package store persists the best score across sessions
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// FileStore keeps the high score as a decimal integer in a text file
// Reads are cached after the first load; writes go through a temp file and rename
type FileStore struct {
	path string

	mu     sync.Mutex
	loaded bool
	high   int
}

// NewFileStore creates a store backed by path, the file need not exist yet
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location
func (s *FileStore) Path() string {
	return s.path
}

// HighScore returns the stored score, 0 when the file is missing or unparseable
func (s *FileStore) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.high = s.load()
		s.loaded = true
	}
	return s.high
}

func (s *FileStore) load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("store: read %s: %v", s.path, err)
		}
		return 0
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		log.Printf("store: ignoring malformed high score in %s: %q", s.path, data)
		return 0
	}
	return v
}

// SaveHighScore writes score atomically, creating the parent directory when needed
func (s *FileStore) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(score) + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename to %s: %w", s.path, err)
	}

	s.high = score
	s.loaded = true
	return nil
}
