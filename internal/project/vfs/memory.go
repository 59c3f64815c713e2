package vfs

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// errIsDir aligns MemFS with the POSIX error OSFS returns.
var errIsDir = syscall.EISDIR

// MemFS implements VFS using an in-memory file system.
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu       sync.RWMutex
	files    map[string]*memFile
	dirs     map[string]bool
	readOnly map[string]bool
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files:    make(map[string]*memFile),
		dirs:     map[string]bool{"/": true},
		readOnly: make(map[string]bool),
	}
}

// Ensure MemFS implements VFS.
var _ VFS = (*MemFS)(nil)

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: errIsDir}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}

	content := make([]byte, len(f.content))
	copy(content, f.content)
	return content, nil
}

// WriteFile writes data to a file, creating it if necessary.
func (m *MemFS) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = cleanPath(filePath)
	if err := m.writableLocked("write", filePath); err != nil {
		return err
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.files[filePath] = &memFile{content: content, mode: perm, modTime: time.Now()}
	return nil
}

// writableLocked checks a file can be created at filePath.
func (m *MemFS) writableLocked(op, filePath string) error {
	if m.dirs[filePath] {
		return &fs.PathError{Op: op, Path: filePath, Err: errIsDir}
	}
	dir := path.Dir(filePath)
	if !m.dirs[dir] {
		return &fs.PathError{Op: op, Path: filePath, Err: fs.ErrNotExist}
	}
	if m.readOnly[filePath] || m.readOnly[dir] {
		return &fs.PathError{Op: op, Path: filePath, Err: fs.ErrPermission}
	}
	return nil
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if f, ok := m.files[filePath]; ok {
		return NewFileInfo(filePath, int64(len(f.content)), f.mode, f.modTime, false), nil
	}
	if m.dirs[filePath] {
		return NewFileInfo(filePath, 0, fs.ModeDir|0o755, time.Time{}, true), nil
	}
	return FileInfo{}, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// MkdirAll creates a directory and all parent directories.
func (m *MemFS) MkdirAll(dirPath string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := ""
	for _, part := range strings.Split(strings.Trim(cleanPath(dirPath), "/"), "/") {
		if part == "" {
			continue
		}
		current += "/" + part
		if _, ok := m.files[current]; ok {
			return &fs.PathError{Op: "mkdir", Path: current, Err: syscall.ENOTDIR}
		}
		m.dirs[current] = true
	}
	return nil
}

// Rename moves a file, replacing any existing target.
func (m *MemFS) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldPath, newPath = cleanPath(oldPath), cleanPath(newPath)
	f, ok := m.files[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if err := m.writableLocked("rename", newPath); err != nil {
		return err
	}

	m.files[newPath] = f
	delete(m.files, oldPath)
	return nil
}

// Remove removes a file.
func (m *MemFS) Remove(filePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = cleanPath(filePath)
	if _, ok := m.files[filePath]; !ok {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	delete(m.files, filePath)
	return nil
}

// Abs returns the cleaned path; MemFS paths are always absolute.
func (m *MemFS) Abs(filePath string) (string, error) {
	return cleanPath(filePath), nil
}

// Exists returns true if the path exists.
func (m *MemFS) Exists(filePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	_, ok := m.files[filePath]
	return ok || m.dirs[filePath]
}

// AddFile is a convenience method for adding files during setup.
func (m *MemFS) AddFile(filePath string, content string) error {
	if err := m.MkdirAll(path.Dir(cleanPath(filePath)), 0o755); err != nil {
		return err
	}
	return m.WriteFile(filePath, []byte(content), 0o644)
}

// SetReadOnly makes writes to filePath, or to files inside it when it is a
// directory, fail with fs.ErrPermission.
func (m *MemFS) SetReadOnly(filePath string, readOnly bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = cleanPath(filePath)
	if readOnly {
		m.readOnly[filePath] = true
	} else {
		delete(m.readOnly, filePath)
	}
}

// Files returns all file paths in the file system.
func (m *MemFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]string, 0, len(m.files))
	for f := range m.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// cleanPath normalizes a path.
func cleanPath(p string) string {
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
