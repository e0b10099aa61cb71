package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/starford/moodsense/internal/apperr"
)

const jsonIndent = "    "

// ReadJSON decodes the file at path into v. A missing file leaves v untouched
// and reports found=false without error.
func ReadJSON(p Provider, path string, v any) (found bool, err error) {
	data, err := p.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, DecodeJSON(path, data, v)
}

// DecodeJSON unmarshals data read from path, tagging failures with apperr.ErrMalformed.
func DecodeJSON(path string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("storage: parse %s: %w: %w", path, apperr.ErrMalformed, err)
	}
	return nil
}

// LoadList reads a JSON array from path. A missing file yields an empty list.
func LoadList[T any](p Provider, path string) ([]T, error) {
	var items []T
	if _, err := ReadJSON(p, path, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveList overwrites path with items encoded by EncodeJSON.
func SaveList[T any](p Provider, path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := EncodeJSON(items)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", path, err)
	}
	return p.Write(path, data)
}

// EncodeJSON renders v with 4-space indentation and without HTML escaping,
// so non-ASCII text is kept verbatim.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
