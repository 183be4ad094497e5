package doctor

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultRunnerIgnoresStderrOnSuccess(t *testing.T) {
	out, err := defaultRunner("sh", "-c", "echo warning 1>&2; echo v1.2.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := strings.TrimSpace(string(out))
	if got != "v1.2.3" {
		t.Fatalf("expected stdout-only version, got %q", got)
	}
}

func TestCheckFailureUsesDetail(t *testing.T) {
	run := func(name string, args ...string) ([]byte, error) {
		return []byte("tool not found"), errors.New("failed")
	}

	result := check("vapor", run, "vapor", "--version")
	if result.OK {
		t.Fatal("expected failed check")
	}
	if result.Detail != "tool not found" {
		t.Fatalf("expected detail to include error output, got %q", result.Detail)
	}
}

func TestCheckFailureWithoutOutputUsesError(t *testing.T) {
	run := func(name string, args ...string) ([]byte, error) {
		return nil, errors.New(`exec: "vapor": executable file not found in $PATH`)
	}

	result := CheckTool(run, "vapor", "--version")
	if result.OK {
		t.Fatal("expected failed check")
	}
	if !strings.Contains(result.Detail, "executable file not found") {
		t.Fatalf("expected detail from error, got %q", result.Detail)
	}
}

func TestCheckToolNamesByBase(t *testing.T) {
	run := func(name string, args ...string) ([]byte, error) {
		return []byte("toolbox: 18.7.5\n"), nil
	}

	result := CheckTool(run, "/usr/local/bin/vapor", "--version")
	if result.Name != "vapor" {
		t.Fatalf("expected check named vapor, got %q", result.Name)
	}
	if !result.OK || result.Version != "toolbox: 18.7.5" {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestCheckToolWithoutBinary(t *testing.T) {
	run := func(name string, args ...string) ([]byte, error) {
		t.Fatalf("runner should not be called, got %s", name)
		return nil, nil
	}

	if result := CheckTool(run, "  "); result.OK {
		t.Fatalf("expected failed check, got %#v", result)
	}
}
