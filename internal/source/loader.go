package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrUnsupportedCatalog is returned for JSON catalogs that are not an array
// of strings or of objects with a "value"
var ErrUnsupportedCatalog = errors.New("unsupported catalog format")

// LoadFile reads a catalog file. ".json" files go through ParseJSON,
// anything else through ParseText.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		entries, err := ParseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return entries, nil
	}

	entries, err := ParseText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// ParseText reads one suggestion per line. A line is either a value, or a
// key and a value separated by a tab. Blank lines and lines starting with
// '#' are skipped.
func ParseText(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "\t")
		if !found {
			value = key
		}
		entries = append(entries, Entry{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return entries, nil
}

// ParseJSON reads an array whose elements are strings or objects of the
// form {"key": "...", "value": "...", "score": 1.5}. key defaults to value.
func ParseJSON(data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrUnsupportedCatalog)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top level must be an array", ErrUnsupportedCatalog)
	}

	var (
		entries []Entry
		bad     error
	)
	root.ForEach(func(idx, el gjson.Result) bool {
		switch {
		case el.Type == gjson.String:
			entries = append(entries, Entry{Key: el.String(), Value: el.String()})
		case el.IsObject():
			value := el.Get("value")
			if !value.Exists() || value.String() == "" {
				bad = fmt.Errorf("%w: element %d has no value", ErrUnsupportedCatalog, idx.Int())
				return false
			}
			key := el.Get("key").String()
			if key == "" {
				key = value.String()
			}
			entries = append(entries, Entry{Key: key, Value: value.String(), Score: el.Get("score").Float()})
		default:
			bad = fmt.Errorf("%w: element %d is %s", ErrUnsupportedCatalog, idx.Int(), el.Type)
			return false
		}
		return true
	})
	if bad != nil {
		return nil, bad
	}
	return entries, nil
}
