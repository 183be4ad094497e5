package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoManifest is returned when a template directory has no manifest file.
var ErrNoManifest = errors.New("no manifest found")

// Candidate file names checked inside a template directory, in order.
var Candidates = []string{"manifest.yml", "manifest.yaml", "manifest.json"}

// Find locates a manifest at path. path may name the file itself or a
// template directory holding one of the Candidates.
func Find(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %q: %w", path, err)
	}
	if !info.IsDir() {
		return path, nil
	}
	for _, name := range Candidates {
		resolved, err := Resolve(path, name)
		if err == nil {
			return resolved, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w in %q (looked for %s)", ErrNoManifest, path, strings.Join(Candidates, ", "))
}

// Resolve returns the real path of name inside baseDir. The result must be a
// regular file that stays inside baseDir after symlinks are followed.
func Resolve(baseDir string, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("manifest filename is empty")
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve template dir %q: %w", baseDir, err)
	}
	realBase, err := filepath.EvalSymlinks(absBase)
	if err != nil {
		return "", fmt.Errorf("resolve real template dir %q: %w", baseDir, err)
	}

	path, err := filepath.Abs(filepath.Join(baseDir, name))
	if err != nil {
		return "", fmt.Errorf("resolve manifest path %q: %w", name, err)
	}
	if !within(path, absBase) {
		return "", fmt.Errorf("manifest path %q escapes template dir %q", name, baseDir)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("manifest %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("manifest path %q is not a regular file", name)
	}

	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolve real path for %q: %w", name, err)
	}
	if !within(realPath, realBase) {
		return "", fmt.Errorf("manifest path %q escapes template dir %q", name, baseDir)
	}
	return realPath, nil
}

// Load finds and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	resolved, err := Find(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resolved, err)
	}
	return m, nil
}

func within(path, base string) bool {
	return path == base || strings.HasPrefix(path, base+string(filepath.Separator))
}
