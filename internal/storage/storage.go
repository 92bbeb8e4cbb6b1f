// Package storage provides a flat-file backend: one JSON document per
// entity, keyed by a filename derived from the entity name. It implements
// the same store interfaces as the sqlite repositories and is selected
// with KITCHEN_STORAGE=json.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// sanitizeName makes an entity name safe for use as a filename.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", " ", "_")
	return replacer.Replace(strings.TrimSpace(name))
}

func docPath(dir, name string) string {
	return filepath.Join(dir, sanitizeName(name)+".json")
}

func writeDoc(dir, name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := os.WriteFile(docPath(dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// readDoc unmarshals the document for name into v. It reports found=false
// when no document exists.
func readDoc(dir, name string, v interface{}) (bool, error) {
	data, err := os.ReadFile(docPath(dir, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read document: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return true, nil
}

func deleteDoc(dir, name string) (bool, error) {
	err := os.Remove(docPath(dir, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to remove document: %w", err)
	}
	return true, nil
}

// docNames lists entity names by reading the "name" field of every document
// in dir, sorted. The field is authoritative; filenames are sanitized and
// cannot be mapped back.
func docNames(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob documents: %w", err)
	}

	var names []string
	for _, match := range matches {
		data, err := os.ReadFile(match)
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", match, err)
		}
		var doc struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document %s: %w", match, err)
		}
		names = append(names, doc.Name)
	}
	sort.Strings(names)
	return names, nil
}

func ensureDir(base, sub string) (string, error) {
	dir := filepath.Join(base, sub)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return dir, nil
}
