// Package store persists a measurement collection to a single flat file.
//
// The file maps each measurement key to a mapping of YYYY-MM-DD dates to
// numbers. JSON (the default, compatible with metrics_data.json) and YAML
// are supported. Measurement order in the file is significant: it drives
// chart colors, so it is preserved on load and written back on save.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
)

// ErrMalformed wraps every decode failure returned by Load.
var ErrMalformed = errors.New("store: malformed data file")

// Format selects the on-disk encoding.
type Format int

const (
	// FormatAuto picks YAML for .yaml/.yml paths and JSON otherwise.
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

var formatNames = [...]string{
	FormatAuto: "auto",
	FormatJSON: "json",
	FormatYAML: "yaml",
}

// String returns the configuration name of the format.
func (f Format) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat maps a configuration value to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("store: unknown format %q (want auto, json or yaml)", name)
	}
}

// Store reads and writes one data file.
type Store struct {
	path   string
	format Format
	logger *slog.Logger
}

// New creates a Store for path. A nil logger uses slog.Default().
func New(path string, format Format, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if format == FormatAuto {
		format = formatForPath(path)
	}
	return &Store{path: path, format: format, logger: logger}
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the collection from disk. A missing file is not an error and
// yields an empty collection. An unreadable or malformed file also yields an
// empty collection, together with an error describing the problem, so the
// caller can warn and carry on.
func (s *Store) Load() (*data.Collection, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("data file not found, starting empty", "path", s.path)
			return data.NewCollection(), nil
		}
		return data.NewCollection(), fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var c *data.Collection
	switch s.format {
	case FormatYAML:
		c, err = decodeYAML(raw)
	default:
		c, err = decodeJSON(raw)
	}
	if err != nil {
		return data.NewCollection(), fmt.Errorf("%w %s: %w", ErrMalformed, s.path, err)
	}

	s.logger.Debug("loaded data file",
		"path", s.path,
		"format", s.format.String(),
		"measurements", c.Len(),
		"observations", c.Observations(),
	)
	return c, nil
}

// Save overwrites the data file with c. The write is atomic: readers see
// either the previous file or the new one, never a partial write.
func (s *Store) Save(c *data.Collection) error {
	var (
		raw []byte
		err error
	)
	switch s.format {
	case FormatYAML:
		raw, err = encodeYAML(c)
	default:
		raw, err = encodeJSON(c)
	}
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", s.path, err)
	}

	if err := WriteFileAtomic(s.path, raw); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}

	s.logger.Debug("saved data file", "path", s.path, "bytes", len(raw))
	return nil
}

// formatForPath infers the encoding from the file extension.
func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
