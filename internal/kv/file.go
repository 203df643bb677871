package kv

import (
	"fmt"
	"os"
	"path/filepath"
)

// File stores each key as a JSON file in a directory.
type File struct {
	dir string
}

// NewFile returns a file-backed store rooted at dir. The directory is
// created on first write.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) keyPath(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get reads the blob for key. A key that was never written reports
// ok=false rather than an error.
func (f *File) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.keyPath(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes the blob for key atomically via a temp file and rename.
func (f *File) Set(key string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	path := f.keyPath(key)
	tmpFile, err := os.CreateTemp(f.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
