package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		language string
		want     string
	}{
		{"python", "py"},
		{"javascript", "js"},
		{"typescript", "ts"},
		{"java", "java"},
		{"c", "c"},
		{"c++", "cpp"},
		{"c#", "cs"},
		{"go", "go"},
		{"rust", "rs"},
		{"php", "php"},
		{"ruby", "rb"},
		{"swift", "swift"},
		{"kotlin", "kt"},
		{"sql", "sql"},
		{"html", "html"},
		{"css", "css"},
		{"brainfuck", "txt"},
		{"", "txt"},
		{"Python", "py"},
		{" c++ ", "cpp"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extension(tt.language), "Extension(%q)", tt.language)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "improved_code.cpp", FileName("c++"))
	assert.Equal(t, "improved_code.txt", FileName("cobol"))
}

func TestLanguageForFile(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.py", "python"},
		{"src/app.TS", "typescript"},
		{"lib.rs", "rust"},
		{"program.cc", "c++"},
		{"README.md", ""},
		{"noext", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LanguageForFile(tt.path), "LanguageForFile(%q)", tt.path)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	code := "int main(){}"

	path, err := Save(dir, "c++", code)
	require.NoError(t, err)
	assert.Equal(t, "improved_code.cpp", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, code, string(data))

	// No temp file left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	_, err := Save(dir, "go", "old")
	require.NoError(t, err)

	path, err := Save(dir, "go", "new")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
