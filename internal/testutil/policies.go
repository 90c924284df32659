package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WritePolicyDir creates a temp directory containing a policy file for each of
// the given names and returns its path.
func WritePolicyDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		WritePolicy(t, dir, name, `{"version": 1}`)
	}
	return dir
}

// WritePolicy writes a single policy file into dir
func WritePolicy(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write policy %s: %v", name, err)
	}
}
