package preview

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"
)

// ErrNotUTF8 marks files rejected before CSV parsing because the bytes
// do not decode as text.
var ErrNotUTF8 = errors.New("file is not valid UTF-8")

// Table is a parsed CSV: one header row plus data rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Parse reads an entire CSV document. The first record becomes the
// header; ragged records surface as parse errors with line numbers.
func Parse(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Table{}, fmt.Errorf("read: %w", err)
	}
	if !utf8.Valid(data) {
		return Table{}, ErrNotUTF8
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}
	return Table{Columns: records[0], Rows: records[1:]}, nil
}

// ParseFile opens and parses path.
func ParseFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Summary renders the loaded shape, data rows by columns.
func (t Table) Summary() string {
	return fmt.Sprintf("%d rows × %d cols", len(t.Rows), len(t.Columns))
}

// Head returns up to n data rows.
func (t Table) Head(n int) [][]string {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// Service lists and loads CSV files from a configured directory.
type Service struct {
	Dir  string
	Rows int
}

// ListFiles returns the base names of *.csv files under Dir, sorted.
func (s *Service) ListFiles() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	sort.Strings(names)
	return names, nil
}

// Load parses one file from Dir by base name.
func (s *Service) Load(name string) (Table, error) {
	return ParseFile(filepath.Join(s.Dir, name))
}

// HeadRows applies the configured preview row limit.
func (s *Service) HeadRows(t Table) [][]string {
	n := s.Rows
	if n < 1 {
		n = 10
	}
	return t.Head(n)
}
