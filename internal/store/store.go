// File: internal/store/store.go
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"

	"github.com/freshsips/bobagen/internal/order"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMalformedHistory marks a history file that exists but cannot be decoded
// into well-formed records. The generator core never sees malformed input;
// it is rejected here at the persistence boundary.
var ErrMalformedHistory = errors.New("malformed history file")

// historyFile is the verbatim on-disk representation. The outer object and
// field names are a compatibility contract with existing history files and
// must not change.
type historyFile struct {
	Orders []order.Record `json:"orders"`
}

// Store reads and writes the order history file. A missing file reads as an
// empty history. Writes go through a temp file and rename so a crash cannot
// leave a half-written history behind. The store does no cross-process
// locking: two processes generating against the same file race, and the last
// writer wins.
type Store struct {
	path string
	log  *zap.Logger
}

// New builds a Store for the given path, expanding a leading "~".
func New(path string, logger *zap.Logger) (*Store, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand history path %q: %w", path, err)
	}
	return &Store{
		path: expanded,
		log:  logger.Named("store"),
	}, nil
}

// Path returns the resolved history file location.
func (s *Store) Path() string { return s.path }

// Load reads the full history, oldest record first. A missing file yields an
// empty history and no error.
func (s *Store) Load() ([]order.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("history file not found, starting empty", zap.String("path", s.path))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var h historyFile
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedHistory, s.path, err)
	}
	for i, rec := range h.Orders {
		if _, err := time.Parse(order.DateLayout, rec.Date); err != nil {
			return nil, fmt.Errorf("%w: order %d has bad date %q", ErrMalformedHistory, i, rec.Date)
		}
	}
	return h.Orders, nil
}

// Append loads the history, appends rec, and writes the file back.
func (s *Store) Append(rec order.Record) error {
	history, err := s.Load()
	if err != nil {
		return err
	}
	return s.write(historyFile{Orders: append(history, rec)})
}

// Clear resets the file to an empty history. The file is written rather than
// deleted so the on-disk shape stays inspectable.
func (s *Store) Clear() error {
	return s.write(historyFile{Orders: []order.Record{}})
}

func (s *Store) write(h historyFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp history file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace history file: %w", err)
	}

	s.log.Debug("wrote history file", zap.String("path", s.path), zap.Int("orders", len(h.Orders)))
	return nil
}
