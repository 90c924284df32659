package policy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/obolus/obolus-backend/internal/domain"
	"github.com/obolus/obolus-backend/internal/testutil"
)

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePolicy(t, dir, "data_protection", `{"region": "eu"}`)
	testutil.WritePolicy(t, dir, "security_protection", `{"tls": true}`)

	loader := NewLoader(dir)
	policies, err := loader.Load()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(policies) != 2 {
		t.Fatalf("expected 2 policies, got %d", len(policies))
	}

	p, ok := policies["data_protection"]
	if !ok {
		t.Fatal("expected data_protection to be loaded")
	}
	if p.Name != "data_protection" {
		t.Errorf("expected name data_protection, got %s", p.Name)
	}
	if p.Content != `{"region": "eu"}` {
		t.Errorf("unexpected content: %s", p.Content)
	}
}

func TestLoader_Load_IgnoresNonPolicyEntries(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePolicy(t, dir, "malware_protection", `{}`)

	// Wrong extension and a subdirectory with a policy-looking name
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("notes"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "archived.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	policies, err := loader.Load()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(policies) != 1 {
		t.Errorf("expected 1 policy, got %d", len(policies))
	}
	if _, ok := policies["malware_protection"]; !ok {
		t.Error("expected malware_protection to be loaded")
	}
}

func TestLoader_Load_MissingDirectory(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := loader.Load()

	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if kind := domain.KindOf(err); kind != domain.KindIO {
		t.Errorf("expected KindIO, got %s", kind)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected underlying os.ErrNotExist, got %v", err)
	}
}

func TestLoader_Load_UnreadableFileAbortsLoad(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePolicy(t, dir, "data_protection", `{}`)

	// A dangling symlink lists as a .json entry but cannot be read
	if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "broken.json")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader := NewLoader(dir)
	_, err := loader.Load()

	if err == nil {
		t.Fatal("expected fail-fast error for unreadable policy file")
	}
	if kind := domain.KindOf(err); kind != domain.KindIO {
		t.Errorf("expected KindIO, got %s", kind)
	}
	if !strings.Contains(err.Error(), "broken.json") {
		t.Errorf("expected error to name the unreadable file, got %v", err)
	}
}

func TestLoader_Load_EmptyDirectory(t *testing.T) {
	loader := NewLoader(t.TempDir())

	policies, err := loader.Load()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(policies) != 0 {
		t.Errorf("expected no policies, got %d", len(policies))
	}
}
