package folio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Repository loads and saves the whole book as one unit. There is no
// per-record persistence: a Save replaces the previous state entirely,
// which keeps the stored form and the backup contract identical.
type Repository interface {
	// Load returns the persisted book, or an empty book when nothing was
	// ever saved.
	Load() (*Book, error)
	// Save persists the book, replacing any previous state.
	Save(b *Book) error
}

// MemoryRepository keeps the book serialized in memory. Load always returns
// a fresh copy, so mutating a loaded book never leaks into the stored state
// until Save.
type MemoryRepository struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository { return &MemoryRepository{} }

func (r *MemoryRepository) Load() (*Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.data) == 0 {
		return NewBook(), nil
	}
	return Import(bytes.NewReader(r.data))
}

func (r *MemoryRepository) Save(b *Book) error {
	var buf bytes.Buffer
	if err := Export(&buf, b); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = buf.Bytes()
	return nil
}

// FileRepository persists the book as one JSON document on disk, in the
// backup format.
type FileRepository struct {
	Path string
}

// NewFileRepository returns a repository backed by the given file path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{Path: path}
}

func (r *FileRepository) Load() (*Book, error) {
	f, err := os.Open(r.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening book file: %w", err)
	}
	defer f.Close()
	return Import(f)
}

// Save writes to a temporary file in the same directory and renames it over
// the target, so a crash mid-write never leaves a truncated book behind.
func (r *FileRepository) Save(b *Book) error {
	dir := filepath.Dir(r.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.Path)+".tmp*")
	if err != nil {
		return fmt.Errorf("saving book: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Export(tmp, b); err != nil {
		tmp.Close()
		return fmt.Errorf("saving book: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving book: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.Path); err != nil {
		return fmt.Errorf("saving book: %w", err)
	}
	return nil
}
