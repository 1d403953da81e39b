// Package library keeps a directory of book files loaded in memory.
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
	"github.com/blackwell-systems/guidectl/internal/loader"
	"github.com/blackwell-systems/guidectl/internal/logger"
	"github.com/blackwell-systems/guidectl/internal/util"
)

// Ext is the extension of book files.
const Ext = ".json"

// Document is one loaded book file.
type Document struct {
	Path     string
	Digest   string
	Book     *guide.Book
	LoadedAt time.Time
}

// Report summarizes a directory scan.
type Report struct {
	Loaded   int
	Failed   int
	Failures map[string]error
}

// Library holds the books of one directory. A file that fails to decode is
// never half-loaded: the previous good version, if any, stays in place and
// the error is recorded.
type Library struct {
	dir    string
	loader *loader.Loader
	log    *slog.Logger

	mu       sync.RWMutex
	docs     map[string]*Document
	failures map[string]error
}

// New creates an empty library for dir.
func New(dir string, l *loader.Loader, log *slog.Logger) *Library {
	if log == nil {
		log = logger.Discard()
	}
	return &Library{
		dir:      filepath.Clean(dir),
		loader:   l,
		log:      log.With("component", "library"),
		docs:     make(map[string]*Document),
		failures: make(map[string]error),
	}
}

// Dir returns the watched directory.
func (lib *Library) Dir() string {
	return lib.dir
}

// LoadAll scans the directory tree for book files and loads each one.
func (lib *Library) LoadAll() (Report, error) {
	paths, err := Scan(lib.dir)
	if err != nil {
		return Report{}, err
	}

	report := Report{Failures: make(map[string]error)}
	for _, p := range paths {
		if _, err := lib.Reload(p); err != nil {
			report.Failed++
			report.Failures[p] = err
			continue
		}
		report.Loaded++
	}
	lib.log.Info("library loaded", "dir", lib.dir, "books", report.Loaded, "failed", report.Failed)
	return report, nil
}

// Scan returns the book files under dir, sorted. Hidden directories are
// skipped.
func Scan(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	var paths []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsBookFile(p) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// IsBookFile reports whether path names a book file. Hidden and temporary
// files are skipped.
func IsBookFile(path string) bool {
	base := filepath.Base(path)
	return strings.EqualFold(filepath.Ext(base), Ext) && !strings.HasPrefix(base, ".")
}

// Reload (re)loads the book at path. It reports false without decoding when
// the file content is unchanged since the last successful load.
func (lib *Library) Reload(path string) (bool, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			lib.Remove(path)
			return false, guideerr.FileNotFound(path, err)
		}
		err = fmt.Errorf("reading book: %w", err)
		lib.recordFailure(path, err)
		return false, err
	}

	digest := util.SHA256Bytes(data)

	lib.mu.RLock()
	prev, ok := lib.docs[path]
	lib.mu.RUnlock()
	if ok && prev.Digest == digest {
		lib.log.Debug("book unchanged", "path", path)
		return false, nil
	}

	book, err := lib.loader.Parse(data)
	if err != nil {
		lib.recordFailure(path, err)
		lib.log.Warn("book failed to load", "path", path, "error", err)
		return false, err
	}

	lib.mu.Lock()
	lib.docs[path] = &Document{Path: path, Digest: digest, Book: book, LoadedAt: time.Now()}
	delete(lib.failures, path)
	lib.mu.Unlock()

	lib.log.Debug("book loaded", "path", path)
	return true, nil
}

func (lib *Library) recordFailure(path string, err error) {
	lib.mu.Lock()
	lib.failures[path] = err
	lib.mu.Unlock()
}

// Remove drops the book at path and reports whether it was loaded.
func (lib *Library) Remove(path string) bool {
	path = filepath.Clean(path)

	lib.mu.Lock()
	defer lib.mu.Unlock()

	_, ok := lib.docs[path]
	delete(lib.docs, path)
	delete(lib.failures, path)
	return ok
}

// Get returns the document loaded from path.
func (lib *Library) Get(path string) (*Document, bool) {
	lib.mu.RLock()
	defer lib.mu.RUnlock()

	doc, ok := lib.docs[filepath.Clean(path)]
	return doc, ok
}

// List returns the loaded documents sorted by path.
func (lib *Library) List() []*Document {
	lib.mu.RLock()
	out := make([]*Document, 0, len(lib.docs))
	for _, doc := range lib.docs {
		out = append(out, doc)
	}
	lib.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Failures returns the current load error of each failing file.
func (lib *Library) Failures() map[string]error {
	lib.mu.RLock()
	defer lib.mu.RUnlock()

	out := make(map[string]error, len(lib.failures))
	for p, err := range lib.failures {
		out[p] = err
	}
	return out
}

// Rel returns path relative to the library directory, for display.
func (lib *Library) Rel(path string) string {
	rel, err := filepath.Rel(lib.dir, path)
	if err != nil {
		return path
	}
	return rel
}

// exists reports whether path is a regular file.
func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func statDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
