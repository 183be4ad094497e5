package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindAcceptsFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	if err := os.WriteFile(path, []byte("variables: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Find(path)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != path {
		t.Fatalf("expected %q, got %q", path, got)
	}
}

func TestFindLooksInsideTemplateDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(`{"variables": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Find(dir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if filepath.Base(got) != "manifest.json" {
		t.Fatalf("expected manifest.json, got %q", got)
	}
}

func TestFindPrefersManifestYml(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"manifest.json", "manifest.yml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("variables: []\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Find(dir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if filepath.Base(got) != "manifest.yml" {
		t.Fatalf("expected manifest.yml, got %q", got)
	}
}

func TestFindEmptyDirErrors(t *testing.T) {
	_, err := Find(t.TempDir())
	if !errors.Is(err, ErrNoManifest) {
		t.Fatalf("expected ErrNoManifest, got %v", err)
	}
}

func TestFindMissingPathErrors(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestResolvePathTraversalErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Resolve(dir, "../../../etc/passwd")
	if err == nil {
		t.Fatal("expected error for path traversal attempt")
	}
}

func TestResolveSymlinkEscapeErrors(t *testing.T) {
	outside := t.TempDir()
	target := filepath.Join(outside, "manifest.yml")
	if err := os.WriteFile(target, []byte("variables: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Symlink(target, filepath.Join(dir, "manifest.yml")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if _, err := Resolve(dir, "manifest.yml"); err == nil {
		t.Fatal("expected error for symlink escaping the template dir")
	}
}

func TestResolveEmptyFilenameErrors(t *testing.T) {
	if _, err := Resolve(t.TempDir(), ""); err == nil {
		t.Fatal("expected error for empty filename")
	}
}

func TestLoadParsesDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "manifest.yml"), []byte(vaporManifest), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != "Vapor" || len(m.Variables) != 4 {
		t.Fatalf("unexpected manifest %#v", m)
	}
}
