// Package csvfile loads and saves grids as delimited text files.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/colonyops/cic/internal/core/grid"
)

// Options controls the CSV dialect.
type Options struct {
	Comma      rune // field delimiter, defaults to ','
	LazyQuotes bool // accept bare quotes inside unquoted fields
}

func (o Options) comma() rune {
	if o.Comma == 0 {
		return ','
	}
	return o.Comma
}

// Store reads and writes grids on the local filesystem.
type Store struct {
	opts Options
}

// New creates a store using the given dialect.
func New(opts Options) *Store {
	return &Store{opts: opts}
}

// Load reads the file at path. An empty file yields the default grid;
// rows of differing lengths are an error.
func (s *Store) Load(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	g, err := Read(f, s.opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// Save writes g to path atomically, replacing any existing file.
func (s *Store) Save(g *grid.Grid, path string) error {
	var buf bytes.Buffer
	if err := Write(&buf, g, s.opts); err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err := os.WriteFile(tmp, buf.Bytes(), mode); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Read decodes delimited text into a grid.
func Read(r io.Reader, opts Options) (*grid.Grid, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.comma()
	cr.LazyQuotes = opts.LazyQuotes

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return grid.New(), nil
	}

	g, err := grid.FromRows(records)
	if errors.Is(err, grid.ErrEmpty) {
		return grid.New(), nil
	}
	return g, err
}

// emptyRecord is a row holding one empty field. csv.Writer would emit it as a
// blank line, which csv.Reader skips.
const emptyRecord = "\"\"\n"

// Write encodes g as delimited text.
func Write(w io.Writer, g *grid.Grid, opts Options) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.comma()

	for _, row := range g.Rows() {
		if len(row) == 1 && row[0] == "" {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return fmt.Errorf("encode csv: %w", err)
			}
			if _, err := io.WriteString(w, emptyRecord); err != nil {
				return fmt.Errorf("encode csv: %w", err)
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("encode csv: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return nil
}
