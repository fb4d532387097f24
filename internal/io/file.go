package ioutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// CopyFile copies a file from source to destination.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does. The source file must exist and be readable.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - src: Source file path (must exist)
//   - dst: Destination file path (will be created/overwritten)
//
// Example:
//
//	err := CopyFile(ctx, "input/simple.txt", "out/item_000/simple.txt")
func CopyFile(ctx context.Context, src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't
// exist. Directories are created with mode 0755. If the directory already
// exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// MkdirNew creates a directory that must not already exist, creating any
// missing parents first. An existing directory is an error: item folders
// are never overwritten.
func MkdirNew(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.Mkdir(path, 0755)
}

// UniquePath returns the first non-existing path of the form
// <root>/<stem><ext>, <root>/<stem>.001<ext>, <root>/<stem>.002<ext>, …
//
// Example:
//
//	UniquePath("output", "items", "")     // "output/items", or "output/items.001" if taken
//	UniquePath("output", "items", ".zip") // "output/items.zip", or "output/items.001.zip"
func UniquePath(root, stem, ext string) string {
	candidate := filepath.Join(root, stem+ext)
	for counter := 1; pathExists(candidate); counter++ {
		candidate = filepath.Join(root, fmt.Sprintf("%s.%03d%s", stem, counter, ext))
	}
	return candidate
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names, so paths derived from user input work across
// operating systems.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("thesis: part 1/2") // Returns "thesis_ part 1_2"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
