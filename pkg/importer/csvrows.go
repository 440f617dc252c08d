package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
)

// nullMarker is how the dataset encodes missing values.
const nullMarker = `\N`

// csvRows iterates a CSV file with named column access.
type csvRows struct {
	f    *os.File
	r    *csv.Reader
	cols map[string]int
	cur  []string
	line int
	err  error
}

func (c *csvRows) Next() bool {
	rec, err := c.r.Read()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			c.err = err
		}
		return false
	}
	c.cur = rec
	c.line++
	return true
}

func (c *csvRows) Err() error { return c.err }

func (c *csvRows) Close() { c.f.Close() }

func (c *csvRows) String(col string) string {
	idx, ok := c.cols[col]
	if !ok || idx >= len(c.cur) {
		return ""
	}
	return c.cur[idx]
}

// StringPtr returns nil for missing values.
func (c *csvRows) StringPtr(col string) *string {
	raw := c.String(col)
	if raw == "" || raw == nullMarker {
		return nil
	}
	return &raw
}

func (c *csvRows) Int(col string) (int, error) {
	ret, err := strconv.Atoi(c.String(col))
	if err != nil {
		return 0, errors.New(col + ": not a number in line " +
			strconv.Itoa(c.line))
	}
	return ret, nil
}

// IntPtr returns nil for missing or non-numeric values.
func (c *csvRows) IntPtr(col string) *int {
	raw := c.StringPtr(col)
	if raw == nil {
		return nil
	}
	ret, err := strconv.Atoi(*raw)
	if err != nil {
		return nil
	}
	return &ret
}
