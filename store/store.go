// SPDX-License-Identifier: MIT

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/terragrid/grid"
)

var (
	// ErrSnapshotNotFound indicates no file exists for the requested name.
	ErrSnapshotNotFound = errors.New("store: snapshot not found")

	// ErrEmptyName indicates an empty snapshot name.
	ErrEmptyName = errors.New("store: empty snapshot name")

	// ErrInvalidName indicates a name that would escape the store directory.
	ErrInvalidName = errors.New("store: invalid snapshot name")

	// ErrUnknownFormat indicates a path whose extension maps to no codec.
	ErrUnknownFormat = errors.New("store: unknown snapshot format")
)

// Codec encodes snapshots for one file format.
type Codec struct {
	Ext       string
	Marshal   func(any) ([]byte, error)
	Unmarshal func([]byte, any) error
}

// JSON writes indented JSON.
var JSON = Codec{
	Ext:       ".json",
	Marshal:   func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") },
	Unmarshal: json.Unmarshal,
}

// YAML writes YAML.
var YAML = Codec{
	Ext:       ".yaml",
	Marshal:   yaml.Marshal,
	Unmarshal: yaml.Unmarshal,
}

// CodecFor picks a codec from the extension of path.
func CodecFor(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}

	return Codec{}, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// FileStore keeps snapshots in a directory.
type FileStore struct {
	dir   string
	codec Codec
}

// Option customizes New.
type Option func(*FileStore)

// WithCodec selects the file format (default JSON).
func WithCodec(c Codec) Option {
	return func(s *FileStore) { s.codec = c }
}

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string, opts ...Option) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}
	s := &FileStore{dir: dir, codec: JSON}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Dir returns the store directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return filepath.Join(s.dir, name+s.codec.Ext), nil
}

// Save writes snap under name, replacing any previous file.
func (s *FileStore) Save(name string, snap *grid.Snapshot) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	return write(p, s.codec, snap)
}

// Load reads the snapshot saved under name.
func (s *FileStore) Load(name string) (*grid.Snapshot, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	return read(p, s.codec)
}

// Delete removes the snapshot saved under name.
func (s *FileStore) Delete(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrSnapshotNotFound, name)
		}
		return fmt.Errorf("store: delete %s: %w", p, err)
	}

	return nil
}

// Exists reports whether a snapshot is saved under name.
func (s *FileStore) Exists(name string) bool {
	p, err := s.path(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)

	return err == nil
}

// List returns the saved snapshot names in lexical order.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("store: list %s: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), s.codec.Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), s.codec.Ext))
	}
	sort.Strings(names)

	return names, nil
}

// SaveFile writes snap to path in the format named by its extension.
func SaveFile(path string, snap *grid.Snapshot) error {
	c, err := CodecFor(path)
	if err != nil {
		return err
	}

	return write(path, c, snap)
}

// LoadFile reads a snapshot from path in the format named by its extension.
func LoadFile(path string) (*grid.Snapshot, error) {
	c, err := CodecFor(path)
	if err != nil {
		return nil, err
	}

	return read(path, c)
}

func write(path string, c Codec, snap *grid.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("store: nil snapshot for %s", path)
	}
	data, err := c.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}

	return nil
}

func read(path string, c Codec) (*grid.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
		}
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	var snap grid.Snapshot
	if err := c.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", path, err)
	}

	return &snap, nil
}
