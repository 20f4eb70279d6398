package content

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliakramer/wortschatz/internal/domain"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "numbers.json", `[
		{"de": "eins", "en": "one", "hint": "1"},
		{"de": "zwei", "en": "two", "hint": "2"}
	]`)
	writeFile(t, dir, "colors.json", `[
		{"de": "rot", "en": "red", "hint": "like blood"}
	]`)
	writeFile(t, dir, "notes.txt", "not json, ignored")

	lib, err := Load(dir, discard())
	require.NoError(t, err)

	assert.Equal(t, []string{"colors", "numbers"}, lib.Categories())
	assert.Equal(t, 3, lib.TotalWords())

	numbers, ok := lib.Pool("numbers")
	require.True(t, ok)
	require.Len(t, numbers, 2)
	assert.Equal(t, "eins", numbers[0].De)
	assert.Equal(t, "one", numbers[0].En)

	_, ok = lib.Pool("missing")
	assert.False(t, ok)
}

func TestLoad_SkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", `[{"de": "ja", "en": "yes", "hint": ""}]`)
	writeFile(t, dir, "broken.json", `{not json`)
	writeFile(t, dir, "empty.json", `[]`)
	writeFile(t, dir, "incomplete.json", `[{"de": "nur"}]`)

	lib, err := Load(dir, discard())
	require.NoError(t, err)
	assert.Equal(t, []string{"good"}, lib.Categories())
}

func TestLoad_MissingDir(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "nope"), discard())
	require.NoError(t, err)
	assert.Zero(t, lib.Len())
	assert.Empty(t, lib.Categories())
}

func TestMerged_TagsCategories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "animals.json", `[{"de": "Hund", "en": "dog", "hint": ""}]`)
	writeFile(t, dir, "verbs.json", `[{"de": "gehen", "en": "to go", "hint": ""}]`)

	lib, err := Load(dir, discard())
	require.NoError(t, err)

	merged := lib.Merged()
	require.Len(t, merged, 2)
	assert.Equal(t, "animals", merged[0].Category)
	assert.Equal(t, "verbs", merged[1].Category)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "animals.json", `[{"de": "Katze", "en": "cat", "hint": ""}]`)

	lib, err := Load(dir, discard())
	require.NoError(t, err)

	pool, ok := lib.Resolve("animals")
	require.True(t, ok)
	assert.Len(t, pool, 1)

	all, ok := lib.Resolve(domain.AllCategories)
	require.True(t, ok)
	assert.Len(t, all, 1)
	assert.Equal(t, "animals", all[0].Category)
}

func TestResolve_EmptyLibrary(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "nope"), discard())
	require.NoError(t, err)
	_, ok := lib.Resolve(domain.AllCategories)
	assert.False(t, ok)
}

func TestLoad_SentenceDifficulty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sentences.json", `[
		{"de": "Ich bin hier.", "en": "I am here.", "hint": "", "difficulty": 1},
		{"de": "Er wäre gern gekommen.", "en": "He would have liked to come.", "hint": "", "difficulty": 3}
	]`)

	lib, err := Load(dir, discard())
	require.NoError(t, err)

	pool, ok := lib.Pool("sentences")
	require.True(t, ok)
	assert.Equal(t, 1, pool[0].Difficulty)
	assert.Equal(t, 3, pool[1].Difficulty)
}
