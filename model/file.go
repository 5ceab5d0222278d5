package model

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SaveToFile serializes the current cells to a text file, one row per line,
// '1' for alive and '0' for dead, newline-terminated. The content is written
// to a temp file and renamed into place so the target is never left half
// written.
func (g *Grid) SaveToFile(path string) error {
	var buf bytes.Buffer
	for _, row := range g.cells {
		for _, cell := range row {
			if cell {
				buf.WriteByte('1')
			} else {
				buf.WriteByte('0')
			}
		}
		buf.WriteByte('\n')
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".golife-*")
	if err != nil {
		return errors.Wrapf(err, "[SaveToFile] failed to create temp file in: %+v", dir)
	}

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "[SaveToFile] failed to write temp file: %+v", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "[SaveToFile] failed to close temp file: %+v", tmp.Name())
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "[SaveToFile] failed to rename temp file to: %+v", path)
	}
	return nil
}
