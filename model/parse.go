package model

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrInconsistentWidth is returned when the rows of a grid file differ in length
var ErrInconsistentWidth = errors.New("inconsistent row widths")

// ParseError reports a grid file character outside '0'/'1'
type ParseError struct {
	Char rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid character %q (expected 0 or 1)", e.Char)
}

// ParseCells parses newline-separated rows of '0' and '1' characters into a
// cell matrix. '1' means alive. All rows must have the same length; a trailing
// newline is optional.
func ParseCells(content string) ([][]bool, error) {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, errors.New("[ParseCells] empty grid data")
	}

	width := len(lines[0])
	cells := make([][]bool, 0, len(lines))
	for _, line := range lines {
		if len(line) != width {
			return nil, ErrInconsistentWidth
		}
		row := make([]bool, 0, width)
		for _, c := range line {
			switch c {
			case '0':
				row = append(row, false)
			case '1':
				row = append(row, true)
			default:
				return nil, &ParseError{Char: c}
			}
		}
		cells = append(cells, row)
	}

	return cells, nil
}

// NewGridFromText builds a grid from grid-file text. Dimensions are inferred
// from the line count and first-line length; both cells and the snapshot are
// set to the parsed matrix.
func NewGridFromText(content string) (*Grid, error) {
	cells, err := ParseCells(content)
	if err != nil {
		return nil, err
	}
	return newGridFromCells(cells), nil
}

// NewGridFromFile reads a grid file and parses it. The caller is responsible
// for resizing the terminal to the grid dimensions after a successful load.
func NewGridFromFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewGridFromFile] failed to read file: %+v", path)
	}
	return NewGridFromText(string(data))
}
