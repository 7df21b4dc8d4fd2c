package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tailscale/hujson"
)

// ParseError reports catalog text that could not be decoded into a Document.
// Line and Column are 1-based and zero when the position is unknown.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing catalog at line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parsing catalog: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes catalog text into a Document. Comments and trailing commas
// are stripped before decoding. The top level must be an object carrying
// both the attributes and events sequences; other keys are ignored.
func Parse(text string) (*Document, error) {
	data, err := Standardize([]byte(text))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		line, col := position(data, err)
		return nil, &ParseError{Line: line, Column: col, Err: err}
	}
	if err := checkSections(data); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &doc, nil
}

// checkSections rejects documents whose attributes or events sequence is
// missing or null, so a misspelled key never loads as an empty catalog.
func checkSections(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return err
	}
	if top == nil {
		return errors.New("catalog must be a JSON object")
	}
	for _, key := range []string{"attributes", "events"} {
		raw, ok := top[key]
		if !ok {
			return fmt.Errorf("missing %q", key)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("%q must be an array, got null", key)
		}
	}
	return nil
}

// Standardize converts commented JSON into standard JSON. Byte offsets are
// preserved: comments are replaced by whitespace, not removed.
func Standardize(data []byte) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("catalog text is empty")
	}
	out, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// position maps a decoding error offset to a line and column.
func position(data []byte, err error) (int, int) {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0, 0
	}
	if offset <= 0 || offset > int64(len(data)) {
		return 0, 0
	}

	line, col := 1, 1
	for _, b := range data[:offset-1] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
