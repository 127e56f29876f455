package store

import (
	"os"
	"path/filepath"
	"testing"
)

// TestFileStoreMissingFile verifies an absent file reads as zero
func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "highscore"))

	if got := s.HighScore(); got != 0 {
		t.Errorf("Expected 0 for missing file, got %d", got)
	}
}

// TestFileStoreMalformed verifies unparseable content degrades to zero
func TestFileStoreMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"text", "lots\n", 0},
		{"negative", "-4", 0},
		{"float", "12.5", 0},
		{"valid with whitespace", "  42\n", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write fixture: %v", err)
			}

			if got := NewFileStore(path).HighScore(); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

// TestFileStoreRoundTrip verifies a saved score survives a new store instance
func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "highscore")

	if err := NewFileStore(path).SaveHighScore(17); err != nil {
		t.Fatalf("SaveHighScore failed: %v", err)
	}

	// Fresh instance simulates a process restart
	if got := NewFileStore(path).HighScore(); got != 17 {
		t.Errorf("Expected 17 after restart, got %d", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read store file: %v", err)
	}
	if string(data) != "17\n" {
		t.Errorf("Expected file content %q, got %q", "17\n", data)
	}
}

// TestFileStoreNoTempLeftovers verifies the atomic write cleans up after itself
func TestFileStoreNoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "highscore"))

	for _, score := range []int{3, 9, 27} {
		if err := s.SaveHighScore(score); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", score, err)
		}
	}
	if got := s.HighScore(); got != 27 {
		t.Errorf("Expected cached 27, got %d", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "highscore" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only the highscore file, got %v", names)
	}
}

// TestFileStoreUnwritable verifies write errors are reported
func TestFileStoreUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write blocker: %v", err)
	}

	// Parent path is a regular file, MkdirAll must fail
	s := NewFileStore(filepath.Join(blocker, "highscore"))
	if err := s.SaveHighScore(5); err == nil {
		t.Error("Expected error writing below a regular file")
	}
	if got := s.HighScore(); got != 0 {
		t.Errorf("Expected 0 after failed save, got %d", got)
	}
}

// TestMemoryStore verifies the in-memory variant
func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore(4)
	if m.HighScore() != 4 {
		t.Errorf("Expected 4, got %d", m.HighScore())
	}
	if err := m.SaveHighScore(8); err != nil {
		t.Fatalf("SaveHighScore failed: %v", err)
	}
	if m.HighScore() != 8 || m.Saves() != 1 {
		t.Errorf("Expected 8 with 1 save, got %d with %d", m.HighScore(), m.Saves())
	}
}
