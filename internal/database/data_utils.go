package database

import (
	"os"
	"strings"
)

// loadFromYAMLFile is a generic YAML loader for a single file.
// It returns an empty slice if the file is not found or empty.
func loadFromYAMLFile[T any](path string, decode func([]byte) ([]T, error)) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// If the file is missing, return empty slice (no-op)
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return []T{}, nil
	}

	items, err := decode(data)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// normalizeUsername trims and lowercases a username the way it is stored
func normalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
