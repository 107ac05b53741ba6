package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/skyhop/internal/config"
)

// HighScoreFile keeps the single best score as a decimal number in a text
// file. It is safe for concurrent use by several sessions.
type HighScoreFile struct {
	mu   sync.Mutex
	path string
}

// NewHighScoreFile returns a store backed by path. A leading ~ is expanded;
// the file itself is created on the first Save.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return &HighScoreFile{path: expanded}, nil
}

// Path returns the file location.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load returns the stored score. A missing, unreadable or malformed file
// reads as 0.
func (f *HighScoreFile) Load() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// SaveIfHigher stores score only if it beats the stored value. It returns
// the best score after the call and whether the file was rewritten. The
// read and the write happen under one lock, so sessions sharing the file
// never replace a higher score with a lower one.
func (f *HighScoreFile) SaveIfHigher(score int) (best int, saved bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := f.read()
	if score <= current {
		return current, false, nil
	}
	if err := f.write(score); err != nil {
		return current, false, err
	}
	return score, true, nil
}

func (f *HighScoreFile) read() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// write overwrites the file with score. Callers hold f.mu.
func (f *HighScoreFile) write(score int) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for high score: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}
