package patterns

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-life/model"
)

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("!c\r\nO.\n.O"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if want := []string{"!c", "O.", ".O"}; !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines %q, expected %q", lines, want)
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]string{
		"glider.rle":       FormatRLE,
		"GUN.RLE":          FormatRLE,
		"blinker.cells":    FormatPlaintext,
		"dir/pattern.txt":  FormatPlaintext,
		"pattern.unknown":  "",
		"no-extension-rle": "",
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		if want == "" {
			if !model.IsInvalidConfiguration(err) {
				t.Fatalf("FormatFromPath(%q): expected InvalidConfigurationError, got %v", path, err)
			}
			continue
		}
		if err != nil || got != want {
			t.Fatalf("FormatFromPath(%q)=%q, %v; expected %q", path, got, err, want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	rle := write("glider.rle", "#N Glider\nx = 3, y = 3\nbob$2bo$3o!\n")
	cells := write("glider.cells", "!Name: Glider\n.O.\n..O\nOOO\n")

	fromRLE, err := LoadFile(rle, "", 1)
	if err != nil {
		t.Fatalf("LoadFile(rle): %v", err)
	}
	fromCells, err := LoadFile(cells, "", 1)
	if err != nil {
		t.Fatalf("LoadFile(cells): %v", err)
	}
	if !fromRLE.Equal(fromCells) {
		t.Fatalf("RLE and plaintext gliders differ:\n%v\n%v", fromRLE.Cells(), fromCells.Cells())
	}
	assertGrid(t, fromRLE, 5, 5, [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}})

	// explicit format wins over the extension
	asText := write("glider.dat", ".O.\n..O\nOOO\n")
	if _, err = LoadFile(asText, FormatPlaintext, 0); err != nil {
		t.Fatalf("LoadFile with explicit format: %v", err)
	}

	broken := write("broken.rle", "bob$2bo$3o!\n")
	if _, err = LoadFile(broken, "", 0); !model.IsMalformedPattern(err) {
		t.Fatalf("expected MalformedPatternError through the wrap, got %v", err)
	}

	if _, err = LoadFile(filepath.Join(dir, "missing.rle"), "", 0); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if _, err = LoadFile(asText, "", 0); !model.IsInvalidConfiguration(err) {
		t.Fatalf("expected InvalidConfigurationError for an unknown extension, got %v", err)
	}
	if _, err = LoadFile(rle, "life106", 0); !model.IsInvalidConfiguration(err) {
		t.Fatalf("expected InvalidConfigurationError for an unknown format, got %v", err)
	}
}
