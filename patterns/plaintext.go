package patterns

import (
	"strings"
	"unicode/utf8"

	"github.com/sheikhrachel/go-life/model"
)

const (
	plaintextComment = '!'
	plaintextAlive   = 'O'
)

// LoadPlaintext decodes a plaintext (.cells) pattern into a fresh grid surrounded by a
// pad-wide dead border. Lines starting with '!' are comments; 'O' marks a live cell and
// every other character a dead one.
func LoadPlaintext(lines []string, pad int) (*model.Grid, error) {
	var (
		body    = make([]string, 0, len(lines))
		columns = 0
	)
	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, string(plaintextComment)) {
			continue
		}
		body = append(body, line)
		columns = max(columns, utf8.RuneCountInString(line))
	}
	if len(body) == 0 {
		return nil, model.NewMalformedPattern(FormatPlaintext, 0, "no pattern lines")
	}
	if columns == 0 {
		return nil, model.NewMalformedPattern(FormatPlaintext, 0, "pattern lines are all empty")
	}

	grid, err := model.NewGrid(len(body)+2*pad, columns+2*pad, pad)
	if err != nil {
		return nil, err
	}

	for r, line := range body {
		for c, ch := range []rune(line) {
			if ch == plaintextAlive {
				grid.Set(r+pad, c+pad, true)
			}
		}
	}
	return grid, nil
}
