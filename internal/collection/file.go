package collection

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSource loads and saves a collection document on the local disk.
type FileSource struct {
	path   string
	format Format
}

// Compile-time check.
var _ Source = (*FileSource)(nil)

// NewFileSource resolves path and picks its format from the extension.
func NewFileSource(path string) (*FileSource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve collection path %s: %w", path, err)
	}
	format, err := FormatFor(abs)
	if err != nil {
		return nil, err
	}
	return &FileSource{path: abs, format: format}, nil
}

// Path returns the absolute file path.
func (s *FileSource) Path() string { return s.path }

// Format returns the file's encoding.
func (s *FileSource) Format() Format { return s.format }

// Load reads, decodes and validates the file.
func (s *FileSource) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read collection file %s: %w", s.path, err)
	}
	doc, err := Decode(s.format, data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(s.path), err)
	}
	return doc, nil
}

// Save writes doc next to the target and renames it into place, so a
// watcher never observes a half-written file.
func (s *FileSource) Save(doc *Document) error {
	data, err := Encode(s.format, doc)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace collection file %s: %w", s.path, err)
	}
	return nil
}
