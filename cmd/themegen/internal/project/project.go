// Package project locates the enclosing Go module so generated theme
// source lands with the right package name and import paths.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// Root walks up from the current directory until it finds a go.mod,
// returning the directory that contains it.
func Root() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// ModulePath reads the module path from the go.mod in dir.
func ModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// DefaultPackageName derives a package name from the last segment of a
// module path, with any major-version suffix stripped first.
func DefaultPackageName(modulePath string) string {
	base := modulePath
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		base = prefix
	}
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	return PackageName(base)
}

// PackageName sanitizes a path segment into a valid Go package name:
// lowercased, separators and punctuation dropped.
func PackageName(segment string) string {
	var b strings.Builder
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}

	name := b.String()
	if name == "" {
		return "theme"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "t" + name
	}
	return name
}
