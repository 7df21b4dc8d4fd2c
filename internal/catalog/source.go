package catalog

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source supplies raw catalog text. Implementations decide where it comes
// from; retries, if any, are their concern.
type Source interface {
	ReadCatalog() (string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() (string, error)

// ReadCatalog calls f.
func (f SourceFunc) ReadCatalog() (string, error) { return f() }

// StringSource serves catalog text held in memory, typically embedded.
type StringSource string

// ReadCatalog returns the text unchanged.
func (s StringSource) ReadCatalog() (string, error) { return string(s), nil }

// FileSource reads the catalog from a file on disk.
type FileSource struct {
	Path string
}

// ReadCatalog reads the whole file.
func (s FileSource) ReadCatalog() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("reading catalog file %s: %w", s.Path, err)
	}
	return string(data), nil
}

// RepoSource reads the catalog file from a git checkout maintained by Clone
// and Update.
type RepoSource struct {
	Dir  string // checkout root
	File string // catalog file, relative to Dir
}

// ReadCatalog reads Dir/File. A missing checkout is reported distinctly so
// callers can suggest cloning it.
func (s RepoSource) ReadCatalog() (string, error) {
	if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
		return "", fmt.Errorf("catalog checkout %s does not exist", s.Dir)
	}
	return FileSource{Path: filepath.Join(s.Dir, s.File)}.ReadCatalog()
}
