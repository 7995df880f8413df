package patterns

import (
	"strconv"
	"strings"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

const (
	rleComment   = '#'
	rleHeader    = 'x'
	rleRowBreak  = "$"
	rleDeadTag   = 'b'
	rleAliveTag  = 'o'
	maxRunLength = 1 << 24
)

// rleHeaderFields is the parsed "x = W, y = H[, rule = R]" line
type rleHeaderFields struct {
	columns int
	rows    int
}

// LoadRLE decodes a run-length encoded pattern into a fresh grid surrounded by a pad-wide
// dead border. The x/y header sets the pattern size and must come before the body.
func LoadRLE(lines []string, pad int) (*model.Grid, error) {
	var (
		header *rleHeaderFields
		body   []string
	)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, string(rleComment)):
			continue
		case strings.HasPrefix(line, string(rleHeader)):
			if header != nil {
				return nil, model.NewMalformedPattern(FormatRLE, i+1, "duplicate header line")
			}
			h, err := parseRLEHeader(line, i+1)
			if err != nil {
				return nil, err
			}
			header = h
		case header == nil:
			if line == "" {
				continue
			}
			return nil, model.NewMalformedPattern(FormatRLE, i+1, "pattern data before the x = ..., y = ... header")
		default:
			body = append(body, line)
		}
	}
	if header == nil {
		return nil, model.NewMalformedPattern(FormatRLE, 0, "missing x = ..., y = ... header")
	}

	grid, err := model.NewGrid(header.rows+2*pad, header.columns+2*pad, pad)
	if err != nil {
		return nil, err
	}

	d := &runDecoder{grid: grid, pad: pad, rows: header.rows, columns: header.columns}
	if err = d.decode(strings.Join(body, " ")); err != nil {
		return nil, err
	}
	return grid, nil
}

func parseRLEHeader(line string, lineNo int) (*rleHeaderFields, error) {
	var (
		h              rleHeaderFields
		seenX, seenY   bool
		parseDimension = func(key, value string) (int, error) {
			n, err := strconv.Atoi(value)
			if err != nil {
				return 0, model.NewMalformedPattern(FormatRLE, lineNo, "%s = %q is not an integer", key, value)
			}
			if n <= 0 {
				return 0, model.NewMalformedPattern(FormatRLE, lineNo, "%s = %d must be positive", key, n)
			}
			return n, nil
		}
	)

	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, model.NewMalformedPattern(FormatRLE, lineNo, "header field %q is not key = value", strings.TrimSpace(field))
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		var err error
		switch key {
		case "x":
			h.columns, err = parseDimension(key, value)
			seenX = true
		case "y":
			h.rows, err = parseDimension(key, value)
			seenY = true
		case "rule":
			if !rules.IsConway(value) {
				err = model.NewMalformedPattern(FormatRLE, lineNo, "rule %q is not supported, only %s", value, rules.Rule)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	if !seenX || !seenY {
		return nil, model.NewMalformedPattern(FormatRLE, lineNo, "header needs both x and y")
	}
	return &h, nil
}

type decodeState int

const (
	// emitRun: no digits pending, the next tag emits a single cell
	emitRun decodeState = iota
	// readingDigits: a run length is being accumulated
	readingDigits
)

// runDecoder turns "count?tag" tokens into cells, one $-separated row at a time
type runDecoder struct {
	grid          *model.Grid
	pad           int
	rows, columns int

	state decodeState
	count int
	row   int
	col   int
}

// decode consumes the whole body. Any character other than a digit, a tag or
// whitespace ends the pattern.
func (d *runDecoder) decode(stream string) error {
	for row, tokens := range strings.Split(stream, rleRowBreak) {
		d.row, d.col = row, 0
		d.state, d.count = emitRun, 0

		for i := 0; i < len(tokens); i++ {
			ch := tokens[i]
			switch {
			case ch >= '0' && ch <= '9':
				d.state = readingDigits
				d.count = d.count*10 + int(ch-'0')
				if d.count > maxRunLength {
					return model.NewMalformedPattern(FormatRLE, 0, "run length in row %d is too large", row)
				}
			case ch == rleDeadTag || ch == rleAliveTag:
				if err := d.emit(ch == rleAliveTag); err != nil {
					return err
				}
			case ch == ' ' || ch == '\t':
				continue
			default:
				return nil
			}
		}
		// digits with no tag before the row ends are dropped
	}
	return nil
}

func (d *runDecoder) emit(alive bool) error {
	n := 1
	if d.state == readingDigits {
		n = d.count
	}
	d.state, d.count = emitRun, 0

	if d.row >= d.rows {
		return model.NewMalformedPattern(FormatRLE, 0, "row %d is beyond the header height %d", d.row, d.rows)
	}
	if d.col+n > d.columns {
		return model.NewMalformedPattern(FormatRLE, 0, "row %d is wider than the header width %d", d.row, d.columns)
	}
	if alive {
		for c := d.col; c < d.col+n; c++ {
			d.grid.Set(d.row+d.pad, c+d.pad, true)
		}
	}
	d.col += n
	return nil
}
