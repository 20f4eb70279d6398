// Package content loads the vocabulary library from a directory of
// category JSON files. Each *.json file holds one category; the file
// name (without extension) is the category name.
package content

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/juliakramer/wortschatz/internal/domain"
)

// Library is the loaded word collection, keyed by category.
type Library struct {
	categories map[string][]domain.WordEntry
	names      []string
}

// Load reads every *.json file under dir. A file that cannot be read
// or parsed is logged and skipped so one bad category never takes the
// whole library down. An empty or missing directory yields an empty
// library, not an error.
func Load(dir string, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.Default()
	}

	lib := &Library{categories: make(map[string][]domain.WordEntry)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return lib, nil
		}
		return nil, fmt.Errorf("reading content dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		path := filepath.Join(dir, entry.Name())

		words, err := loadFile(path)
		if err != nil {
			logger.Warn("skipping category file", "file", path, "error", err)
			continue
		}
		if len(words) == 0 {
			logger.Warn("skipping empty category", "file", path)
			continue
		}
		lib.categories[name] = words
		lib.names = append(lib.names, name)
	}

	sort.Strings(lib.names)
	return lib, nil
}

func loadFile(path string) ([]domain.WordEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var words []domain.WordEntry
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	for i, w := range words {
		if w.De == "" || w.En == "" {
			return nil, fmt.Errorf("entry %d: missing de or en", i)
		}
	}
	return words, nil
}

// Categories returns the category names in sorted order.
func (l *Library) Categories() []string { return l.names }

// Len returns the number of loaded categories.
func (l *Library) Len() int { return len(l.categories) }

// Pool returns the entries of one category; ok is false for unknown
// names.
func (l *Library) Pool(category string) ([]domain.WordEntry, bool) {
	words, ok := l.categories[category]
	return words, ok
}

// Merged returns every entry across all categories, each tagged with
// its category so merged play still records progress under the right
// key. Category order follows Categories().
func (l *Library) Merged() []domain.WordEntry {
	var out []domain.WordEntry
	for _, name := range l.names {
		for _, w := range l.categories[name] {
			w.Category = name
			out = append(out, w)
		}
	}
	return out
}

// Resolve returns the pool for a category name, treating the merged
// pseudo-category as the union of everything loaded.
func (l *Library) Resolve(category string) ([]domain.WordEntry, bool) {
	if category == domain.AllCategories {
		merged := l.Merged()
		return merged, len(merged) > 0
	}
	return l.Pool(category)
}

// TotalWords counts entries across all categories.
func (l *Library) TotalWords() int {
	n := 0
	for _, words := range l.categories {
		n += len(words)
	}
	return n
}
