package procfs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Record is one tokenized line of a /proc source.
type Record struct {
	// Source is the path the record was read from, used in error messages.
	Source string
	// Fields holds the line's tokens; Fields[0] is the label.
	Fields []string
}

// ReadRecords reads the source at path and returns one Record per non-empty
// line, in file order. When labels are given, only lines whose first token
// equals one of them are kept. The file is closed before returning.
func ReadRecords(path string, labels ...string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer file.Close()

	return ReadRecordsFrom(file, path, labels...)
}

// ReadRecordsFrom is ReadRecords over an open stream. name identifies the
// stream in errors.
func ReadRecordsFrom(r io.Reader, name string, labels ...string) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := Fields(scanner.Text())
		// A blank line has no label to match against.
		if len(fields) == 0 {
			continue
		}
		if len(labels) > 0 && !slices.Contains(labels, fields[0]) {
			continue
		}
		records = append(records, Record{Source: name, Fields: fields})
	}

	if err := scanner.Err(); err != nil {
		return nil, &SourceError{Path: name, Err: fmt.Errorf("scanning: %w", err)}
	}

	return records, nil
}

// Find returns the first record labelled label.
func Find(records []Record, source, label string) (Record, error) {
	for _, rec := range records {
		if rec.Label() == label {
			return rec, nil
		}
	}
	return Record{}, malformed(source, label, -1, "no %q record", label)
}

// First returns the first record of a source that must not be empty.
func First(records []Record, source string) (Record, error) {
	if len(records) == 0 {
		return Record{}, malformed(source, "", -1, "no records")
	}
	return records[0], nil
}

// Label returns the record's first token.
func (r Record) Label() string {
	if len(r.Fields) == 0 {
		return ""
	}
	return r.Fields[0]
}

// Len returns the number of tokens, label included.
func (r Record) Len() int {
	return len(r.Fields)
}

// Require checks that the record carries at least n tokens.
func (r Record) Require(n int) error {
	if len(r.Fields) < n {
		return malformed(r.Source, r.Label(), -1, "expected at least %d fields, got %d", n, len(r.Fields))
	}
	return nil
}

// Field returns the token at index i.
func (r Record) Field(i int) (string, error) {
	if i < 0 || i >= len(r.Fields) {
		return "", malformed(r.Source, r.Label(), i, "missing (record has %d fields)", len(r.Fields))
	}
	return r.Fields[i], nil
}

// Int64 parses the token at index i as a base-10 signed integer.
func (r Record) Int64(i int) (int64, error) {
	s, err := r.Field(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &RecordError{Path: r.Source, Label: r.Label(), Field: i, Err: err}
	}
	return v, nil
}

// Uint64 parses the token at index i as a base-10 unsigned integer.
func (r Record) Uint64(i int) (uint64, error) {
	s, err := r.Field(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &RecordError{Path: r.Source, Label: r.Label(), Field: i, Err: err}
	}
	return v, nil
}

// Seconds parses the token at index i as a decimal seconds value such as
// "12345.67" and truncates it to whole seconds.
func (r Record) Seconds(i int) (int64, error) {
	s, err := r.Field(i)
	if err != nil {
		return 0, err
	}

	whole, frac, _ := strings.Cut(s, ".")
	if strings.IndexFunc(frac, func(c rune) bool { return c < '0' || c > '9' }) >= 0 {
		return 0, malformed(r.Source, r.Label(), i, "invalid fraction in %q", s)
	}
	v, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, &RecordError{Path: r.Source, Label: r.Label(), Field: i, Err: err}
	}
	return v, nil
}
