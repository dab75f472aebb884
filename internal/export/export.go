// Package export saves the improved code to disk and copies it to the
// system clipboard.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// extensions maps a target language to the file extension used when saving
// improved code. Unknown languages fall back to "txt".
var extensions = map[string]string{
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"java":       "java",
	"c":          "c",
	"c++":        "cpp",
	"c#":         "cs",
	"go":         "go",
	"rust":       "rs",
	"php":        "php",
	"ruby":       "rb",
	"swift":      "swift",
	"kotlin":     "kt",
	"sql":        "sql",
	"html":       "html",
	"css":        "css",
}

// languagesByExt is the reverse lookup used by the CLI to infer the target
// language from an input file name.
var languagesByExt = map[string]string{
	"py":    "python",
	"js":    "javascript",
	"ts":    "typescript",
	"java":  "java",
	"c":     "c",
	"cpp":   "c++",
	"cc":    "c++",
	"h":     "c",
	"hpp":   "c++",
	"cs":    "c#",
	"go":    "go",
	"rs":    "rust",
	"php":   "php",
	"rb":    "ruby",
	"swift": "swift",
	"kt":    "kotlin",
	"sql":   "sql",
	"html":  "html",
	"css":   "css",
}

// Extension returns the file extension for a target language.
func Extension(language string) string {
	if ext, ok := extensions[strings.ToLower(strings.TrimSpace(language))]; ok {
		return ext
	}
	return "txt"
}

// FileName returns the download name for improved code in the given language.
func FileName(language string) string {
	return "improved_code." + Extension(language)
}

// LanguageForFile infers the review language from a file path, or "" when
// the extension is not recognized.
func LanguageForFile(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return languagesByExt[ext]
}

// Save writes the improved code to dir as improved_code.<ext> and returns
// the written path. The write goes through a temp file and a rename so a
// half-written file is never left behind.
func Save(dir, language, code string) (string, error) {
	path := filepath.Join(dir, FileName(language))

	tmp, err := os.CreateTemp(dir, ".improved_code-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(code); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to write improved code: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	return path, nil
}

// CopyToClipboard places the improved code on the system clipboard.
func CopyToClipboard(code string) error {
	return clipboard.WriteAll(code)
}
