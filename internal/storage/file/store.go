// Package file keeps each collection as a pretty-printed JSON array in
// <dir>/<name>.json, replaced atomically through a temp file and rename.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const fileMode = 0o644

// ErrInvalidName is returned for collection names that would escape the data directory.
var ErrInvalidName = errors.New("invalid collection name")

// Store is a flat-file collection store. It does no locking; callers in the
// same process serialise their read-modify-write cycles.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates the data directory if needed and returns a store rooted at it.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Path returns the backing file of a collection.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads the collection. Absent or unparsable files yield an empty sequence.
func (s *Store) Load(_ context.Context, name string) ([]json.RawMessage, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("collection file is not a JSON array, treating as empty",
			slog.String("collection", name),
			slog.String("path", s.Path(name)),
			slog.String("error", err.Error()),
		)
		return []json.RawMessage{}, nil
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	return records, nil
}

// Save replaces the collection file with records. On failure the previous
// file is left as it was.
func (s *Store) Save(_ context.Context, name string, records []json.RawMessage) (err error) {
	if err := validateName(name); err != nil {
		return err
	}
	if records == nil {
		records = []json.RawMessage{}
	}

	data, err := encodeCollection(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err = os.Chmod(tmpName, fileMode); err != nil {
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err = os.Rename(tmpName, s.Path(name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

// encodeCollection indents with two spaces and leaves HTML characters
// unescaped, so files written by the legacy site re-encode to the same bytes.
func encodeCollection(records []json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// HealthCheck verifies the data directory is still present.
func (s *Store) HealthCheck(context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("stat data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", s.dir)
	}
	return nil
}
