// Package jsonutil moves JSON across the process boundary to the Python
// scripts, whose stdout may carry diagnostics ahead of the payload.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
)

// MarshalNoEscape encodes v into JSON without HTML escaping of <, > and &.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalFlex decodes raw into v with best effort:
// 1) the whole payload
// 2) a payload that was itself encoded as a JSON string
// 3) the tail starting at the first line that opens an object at column 0
// The error of the direct attempt is returned when nothing decodes.
func UnmarshalFlex(raw []byte, v any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return errors.New("empty JSON payload")
	}
	firstErr := json.Unmarshal(raw, v)
	if firstErr == nil {
		return nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err == nil {
			return UnmarshalFlex([]byte(inner), v)
		}
	}
	lines := bytes.Split(raw, []byte("\n"))
	for i := 1; i < len(lines); i++ {
		if !bytes.HasPrefix(lines[i], []byte("{")) {
			continue
		}
		tail := bytes.Join(lines[i:], []byte("\n"))
		if err := json.Unmarshal(tail, v); err == nil {
			return nil
		}
	}
	return firstErr
}
