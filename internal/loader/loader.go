// Package loader reads and writes guidebook documents on disk.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/blackwell-systems/guidectl/internal/codec"
	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
	"github.com/blackwell-systems/guidectl/internal/logger"
	"github.com/blackwell-systems/guidectl/internal/util"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader turns book files into Books and back. Documents referencing game
// objects must be loaded after the host name registry is populated.
type Loader struct {
	codec *codec.Codec
	log   *slog.Logger
}

// New creates a loader over c. A nil log discards output.
func New(c *codec.Codec, log *slog.Logger) *Loader {
	if log == nil {
		log = logger.Discard()
	}
	return &Loader{codec: c, log: log}
}

// Codec returns the codec the loader decodes with.
func (l *Loader) Codec() *codec.Codec {
	return l.codec
}

// LoadFile reads the book at path. A missing file is a FileNotFound error;
// decode errors are returned as the codec reports them.
func (l *Loader) LoadFile(path string) (*guide.Book, error) {
	book, _, err := l.LoadFileDigest(path)
	return book, err
}

// LoadFileDigest is LoadFile that also returns the sha256 of the bytes it
// decoded, so the digest always describes the loaded book.
func (l *Loader) LoadFileDigest(path string) (*guide.Book, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", guideerr.FileNotFound(path, err)
		}
		return nil, "", fmt.Errorf("reading book: %w", err)
	}

	book, err := l.Parse(data)
	if err != nil {
		l.log.Debug("book rejected", "path", path, "error", err)
		return nil, "", err
	}
	l.log.Debug("book loaded", "path", path, "categories", len(book.Categories))
	return book, util.SHA256Bytes(data), nil
}

// Parse decodes a UTF-8 book document.
func (l *Loader) Parse(data []byte) (*guide.Book, error) {
	return l.codec.DecodeBook(bytes.TrimPrefix(data, utf8BOM))
}

// Marshal encodes b as pretty-printed JSON with two-space indentation and a
// trailing newline.
func (l *Loader) Marshal(b *guide.Book) ([]byte, error) {
	raw, err := l.codec.EncodeBook(b)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting book: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Save writes b to path, creating parent directories as needed.
func (l *Loader) Save(path string, b *guide.Book) error {
	data, err := l.Marshal(b)
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("writing book: %w", err)
	}
	l.log.Debug("book saved", "path", path)
	return nil
}

// Format re-encodes the document data in canonical form: discriminators
// first, entries sorted by identifier, two-space indentation.
func (l *Loader) Format(data []byte) ([]byte, error) {
	book, err := l.Parse(data)
	if err != nil {
		return nil, err
	}
	return l.Marshal(book)
}
