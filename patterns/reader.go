package patterns

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	// FormatPlaintext is the .cells format: rows of '.' and 'O'
	FormatPlaintext = "plaintext"
	// FormatRLE is the run-length encoded format
	FormatRLE = "rle"
)

// Loader decodes pattern lines into a grid with a pad-wide border
type Loader func(lines []string, pad int) (*model.Grid, error)

var loaders = map[string]Loader{
	FormatPlaintext: LoadPlaintext,
	FormatRLE:       LoadRLE,
}

// LoaderFor returns the decoder of a format
func LoaderFor(format string) (Loader, error) {
	l, ok := loaders[format]
	if !ok {
		return nil, model.NewInvalidConfiguration("pattern_format", "unknown pattern format %q", format)
	}
	return l, nil
}

// FormatFromPath infers the pattern format from a file extension
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rle":
		return FormatRLE, nil
	case ".cells", ".txt":
		return FormatPlaintext, nil
	}
	return "", model.NewInvalidConfiguration("pattern_format", "cannot infer the format of %q", path)
}

// ReadLines reads r to the end, one entry per line without terminators
func ReadLines(r io.Reader) ([]string, error) {
	var (
		lines   []string
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ReadLines] failed to scan pattern")
	}
	return lines, nil
}

// LoadFile reads and decodes a pattern file. An empty format is inferred from the extension.
func LoadFile(path, format string, pad int) (*model.Grid, error) {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	load, err := LoaderFor(format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open pattern: %+v", path)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to read pattern: %+v", path)
	}

	grid, err := load(lines, pad)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to decode pattern: %+v", path)
	}
	return grid, nil
}
