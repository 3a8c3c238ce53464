// Package testutil provides common test helpers for the denv project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempProject creates a temporary project directory containing the given
// files (relative path → content). Parent directories are created as needed.
func TempProject(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("TempProject: mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("TempProject: write %s failed: %v", rel, err)
		}
	}
	return dir
}

// MakeVenv creates a fake virtual environment directory with an activation
// script under dir so existence checks and source-line generation succeed.
func MakeVenv(t *testing.T, dir, venvDir string) {
	t.Helper()

	binDir := filepath.Join(dir, venvDir, "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("MakeVenv: mkdir failed: %v", err)
	}
	for _, name := range []string{"activate", "activate.fish"} {
		path := filepath.Join(binDir, name)
		if err := os.WriteFile(path, []byte("# placeholder\n"), 0644); err != nil {
			t.Fatalf("MakeVenv: write %s failed: %v", name, err)
		}
	}
}

// TempConfigFile creates a temporary denv.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "denv.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}
