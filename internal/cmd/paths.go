package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/syntaxpresso/core/internal/jpa"
)

// resolveWithin makes path absolute and verifies it does not escape
// cwd. File-path-bearing commands run this before touching anything:
// the process often runs with editor-supplied arguments, and a target
// outside the project is always a caller bug.
func resolveWithin(cwd, path string) (string, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("resolving cwd: %w", err)
	}

	absPath := path
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(absCwd, absPath)
	}
	absPath = filepath.Clean(absPath)

	rel, err := filepath.Rel(absCwd, absPath)
	if err != nil {
		return "", fmt.Errorf("resolving target path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside the working directory %s", path, cwd)
	}
	return absPath, nil
}

// sourceRoot returns the absolute source-set root for a project.
func sourceRoot(cwd string, dir jpa.SourceDir) (string, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("resolving cwd: %w", err)
	}
	return filepath.Join(absCwd, filepath.FromSlash(dir.Path())), nil
}

// javaFilePath builds the target path for a new Java type.
func javaFilePath(cwd string, dir jpa.SourceDir, packageName, typeName string) (string, error) {
	root, err := sourceRoot(cwd, dir)
	if err != nil {
		return "", err
	}
	packagePath := filepath.FromSlash(strings.ReplaceAll(packageName, ".", "/"))
	return filepath.Join(root, packagePath, typeName+".java"), nil
}
