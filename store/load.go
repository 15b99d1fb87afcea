package store

import (
	"encoding/json"
	"os"
)

// Load reads the JSON document at path and decodes it as a list of records.
// Nothing is cached: every call reads and parses the file again.
func Load[T any](path string) ([]T, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	var records []T
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if records == nil {
		// "null" decodes without error but is not a record list
		records = []T{}
	}
	return records, nil
}
