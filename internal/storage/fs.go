package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const tempPattern = ".moodsense-tmp-*"

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the data directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute data directory.
func (f *FS) Root() string { return f.root }

// safePath resolves a relative path against the root and rejects
// any result that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	abs, err := filepath.Abs(filepath.Join(f.root, cleaned))
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: path escapes data root: %s", rel)
	}
	return abs, nil
}

// Read returns the raw bytes of a data file.
func (f *FS) Read(path string) ([]byte, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

// Stat returns file info for a data file.
func (f *FS) Stat(path string) (fs.FileInfo, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat %s: %w", path, err)
	}
	return info, nil
}

// Write atomically writes content: tmp file → fsync → rename.
func (f *FS) Write(path string, content []byte) error {
	return f.WriteAll(File{Path: path, Content: content})
}

// WriteAll writes every file to a synced temp file first and only then
// renames them into place, in order. A failure while staging leaves all
// targets untouched. A failed rename can still leave earlier targets
// replaced and later ones stale.
func (f *FS) WriteAll(files ...File) error {
	staged := make([]stagedFile, 0, len(files))
	success := false
	defer func() {
		if !success {
			for _, s := range staged {
				_ = os.Remove(s.tmp)
			}
		}
	}()

	for _, file := range files {
		s, err := f.stage(file)
		if err != nil {
			return err
		}
		staged = append(staged, s)
	}

	for i, s := range staged {
		if err := os.Rename(s.tmp, s.target); err != nil {
			// Already renamed temps are gone; drop them from cleanup.
			staged = staged[i:]
			return fmt.Errorf("storage: rename %s: %w", files[i].Path, err)
		}
	}
	success = true
	return nil
}

type stagedFile struct {
	tmp    string
	target string
}

func (f *FS) stage(file File) (stagedFile, error) {
	abs, err := f.safePath(file.Path)
	if err != nil {
		return stagedFile{}, err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return stagedFile{}, fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return stagedFile{}, fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	ok := false
	defer func() {
		if !ok {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(file.Content); err != nil {
		return stagedFile{}, fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return stagedFile{}, fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return stagedFile{}, fmt.Errorf("storage: close temp: %w", err)
	}
	ok = true
	return stagedFile{tmp: tmpName, target: abs}, nil
}
