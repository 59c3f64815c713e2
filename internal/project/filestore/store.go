package filestore

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/cellvim/internal/project/vfs"
)

// DefaultMaxFileSize is the default maximum file size (10MB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Store loads and saves documents as line texts.
type Store interface {
	// Load reads the file at path and returns its lines.
	Load(ctx context.Context, path string) ([]string, error)

	// Save writes lines to path.
	Save(ctx context.Context, path string, lines []string) error
}

// FileStore is a Store backed by a vfs.VFS.
//
// It remembers the layout of every file it loads, so saving writes the
// same line endings, BOM and final newline back. Saves are atomic: the
// content goes to a temporary sibling first and is renamed over the
// target.
type FileStore struct {
	mu sync.Mutex

	fs          vfs.VFS
	maxFileSize int64
	perm        fs.FileMode

	formats  map[string]Format
	modTimes map[string]time.Time
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithMaxFileSize sets the largest file Load accepts. Zero disables the
// limit.
func WithMaxFileSize(size int64) Option {
	return func(s *FileStore) {
		s.maxFileSize = size
	}
}

// WithPerm sets the permission used for new files.
func WithPerm(perm fs.FileMode) Option {
	return func(s *FileStore) {
		s.perm = perm
	}
}

// New creates a FileStore over fsys.
func New(fsys vfs.VFS, opts ...Option) *FileStore {
	s := &FileStore{
		fs:          fsys,
		maxFileSize: DefaultMaxFileSize,
		perm:        0o644,
		formats:     make(map[string]Format),
		modTimes:    make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the file at path.
// Every failure is a *PathError matching ErrFileUnavailable.
func (s *FileStore) Load(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, pathError("load", path, err)
	}

	absPath, err := s.fs.Abs(path)
	if err != nil {
		return nil, pathError("load", path, err)
	}

	info, err := s.fs.Stat(absPath)
	if err != nil {
		return nil, pathError("load", path, err)
	}
	if info.IsDir() {
		return nil, pathError("load", path, ErrIsDirectory)
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return nil, pathError("load", path, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, info.Size()))
	}

	content, err := s.fs.ReadFile(absPath)
	if err != nil {
		return nil, pathError("load", path, err)
	}
	if IsBinary(content) {
		return nil, pathError("load", path, ErrBinaryFile)
	}

	lines, format := Decode(content)

	s.mu.Lock()
	s.formats[absPath] = format
	s.modTimes[absPath] = info.ModTime()
	s.mu.Unlock()

	return lines, nil
}

// Save writes lines to path. A failure leaves any existing file intact.
// Every failure is a *PathError matching ErrFileUnavailable.
func (s *FileStore) Save(ctx context.Context, path string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return pathError("save", path, err)
	}

	absPath, err := s.fs.Abs(path)
	if err != nil {
		return pathError("save", path, err)
	}
	if info, err := s.fs.Stat(absPath); err == nil && info.IsDir() {
		return pathError("save", path, ErrIsDirectory)
	}

	content := Encode(lines, s.Format(absPath))

	tmp := filepath.Join(filepath.Dir(absPath), "."+filepath.Base(absPath)+"."+uuid.NewString()+".tmp")
	if err := s.fs.WriteFile(tmp, content, s.perm); err != nil {
		return pathError("save", path, err)
	}
	if err := s.fs.Rename(tmp, absPath); err != nil {
		_ = s.fs.Remove(tmp)
		return pathError("save", path, err)
	}

	s.mu.Lock()
	if _, ok := s.formats[absPath]; !ok {
		s.formats[absPath] = DefaultFormat
	}
	if info, err := s.fs.Stat(absPath); err == nil {
		s.modTimes[absPath] = info.ModTime()
	}
	s.mu.Unlock()

	return nil
}

// Format returns the remembered layout for path, or DefaultFormat.
func (s *FileStore) Format(path string) Format {
	absPath, err := s.fs.Abs(path)
	if err != nil {
		return DefaultFormat
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.formats[absPath]; ok {
		return f
	}
	return DefaultFormat
}

// ChangedOnDisk reports whether the file at path was modified since the
// store last loaded or saved it. Files the store has never seen report
// false.
func (s *FileStore) ChangedOnDisk(path string) bool {
	absPath, err := s.fs.Abs(path)
	if err != nil {
		return false
	}

	s.mu.Lock()
	known, ok := s.modTimes[absPath]
	s.mu.Unlock()
	if !ok {
		return false
	}

	info, err := s.fs.Stat(absPath)
	if err != nil {
		return true
	}
	return !info.ModTime().Equal(known)
}

// Exists reports whether path names an existing file.
func (s *FileStore) Exists(path string) bool {
	return s.fs.Exists(path)
}
