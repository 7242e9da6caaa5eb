// Package export renders job and component listings as CSV and archives the
// resulting files.
package export

import (
	"errors"
	"strings"
)

// ErrNoHeaders is returned when neither headers nor records are given.
var ErrNoHeaders = errors.New("export: no headers")

// Field is one named value of a record.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered list of fields.
type Record []Field

// Get returns the value of the named field, or "" when absent.
func (r Record) Get(name string) string {
	for _, f := range r {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Encode renders records as CSV, one line per record joined by "\n" with no
// trailing newline. The header row is headers, or the field names of the
// first record when headers is empty, written verbatim. Values containing a comma or a double
// quote are quoted, with inner quotes doubled.
func Encode(records []Record, headers []string) ([]byte, error) {
	if len(headers) == 0 {
		if len(records) == 0 {
			return nil, ErrNoHeaders
		}
		for _, f := range records[0] {
			headers = append(headers, f.Name)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	row := make([]string, len(headers))
	for _, r := range records {
		for i, h := range headers {
			row[i] = r.Get(h)
		}
		b.WriteByte('\n')
		writeRow(&b, row)
	}
	return []byte(b.String()), nil
}

func writeRow(b *strings.Builder, values []string) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(v))
	}
}

func quote(v string) string {
	if !strings.ContainsAny(v, `,"`) {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
