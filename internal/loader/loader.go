// Package loader turns a data file path into an options chain.
//
// The decoder is picked from the file extension. Unknown extensions
// are treated as JSON, which is the canonical snapshot format.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mr-Dark-debug/chainview/internal/chain"
	"github.com/Mr-Dark-debug/chainview/internal/database"
)

// DefaultPath is used when no data file is given.
const DefaultPath = "sample-options-chain.json"

// ErrUnreadable is wrapped when the data file cannot be opened or read.
var ErrUnreadable = errors.New("options chain file unreadable")

// Format identifies a supported data file encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// DetectFormat maps a path to the decoder that will read it.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// Load reads the chain at path. Any failure is fatal to the caller;
// nothing is returned alongside an error.
func Load(path string) (*chain.Chain, error) {
	if path == "" {
		path = DefaultPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnreadable, path)
	}

	switch DetectFormat(path) {
	case FormatSQLite:
		return loadSnapshot(path)
	case FormatYAML:
		return decodeFile(path, chain.DecodeYAML)
	default:
		return decodeFile(path, chain.DecodeJSON)
	}
}

func decodeFile(path string, decode func(io.Reader) (*chain.Chain, error)) (*chain.Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	c, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

func loadSnapshot(path string) (*chain.Chain, error) {
	store, err := database.OpenSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return fromSource(path, store)
}

func fromSource(path string, src database.Source) (*chain.Chain, error) {
	defer src.Close()

	c, err := src.LoadChain()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}
