// internal/status/read.go
package status

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ReadError is a filesystem failure on a status file that exists.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("status: read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError means the last line of the status file is not a JSON object.
type ParseError struct {
	Path string
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("status: parse last line of %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Read returns the most recent observation in the status file.
// A missing file is not an error: it yields an empty Record.
func Read(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, nil
		}
		return Record{}, &ReadError{Path: path, Err: err}
	}
	return ParseLast(path, data)
}

// ParseLast decodes the last line of data.
// The helper appends one object per observation, so trailing data wins.
func ParseLast(path string, data []byte) (Record, error) {
	content := strings.TrimSpace(string(data))

	last := content
	if i := strings.LastIndexByte(content, '\n'); i >= 0 {
		last = content[i+1:]
	}
	last = strings.TrimSpace(last)

	if last == "" {
		return Record{}, nil
	}

	var rec Record
	if err := json.Unmarshal([]byte(last), &rec); err != nil {
		return Record{}, &ParseError{Path: path, Line: last, Err: err}
	}
	return rec, nil
}
