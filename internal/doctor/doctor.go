package doctor

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
)

type Runner func(name string, args ...string) ([]byte, error)

type CheckResult struct {
	Name    string
	OK      bool
	Version string
	Detail  string
}

// Target describes what a project needs on the host.
type Target struct {
	Tool        string
	VersionArgs []string
	// NeedDocker is set when the manifest is read out of a template image.
	NeedDocker bool
}

func defaultRunner(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	stdout, err := cmd.Output()
	if err == nil {
		return stdout, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		combined := make([]byte, 0, len(stdout)+len(exitErr.Stderr))
		combined = append(combined, stdout...)
		combined = append(combined, exitErr.Stderr...)
		return combined, err
	}

	return stdout, err
}

func CheckTool(run Runner, binary string, versionArgs ...string) CheckResult {
	if strings.TrimSpace(binary) == "" {
		return CheckResult{Name: "tool", Detail: "no tool configured"}
	}
	return check(filepath.Base(binary), run, binary, versionArgs...)
}

func CheckDocker(run Runner) CheckResult {
	return check("docker", run, "docker", "version", "--format", "{{.Server.Version}}")
}

func RunAll(target Target) []CheckResult {
	return RunAllWithRunner(target, defaultRunner)
}

func RunAllWithRunner(target Target, run Runner) []CheckResult {
	results := []CheckResult{CheckTool(run, target.Tool, target.VersionArgs...)}
	if target.NeedDocker {
		results = append(results, CheckDocker(run))
	}
	return results
}

func check(name string, run Runner, binary string, args ...string) CheckResult {
	output, err := run(binary, args...)
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail == "" {
			detail = err.Error()
		}
		return CheckResult{
			Name:   name,
			OK:     false,
			Detail: detail,
		}
	}

	version := strings.TrimSpace(firstLine(string(output)))
	if version == "" {
		return CheckResult{Name: name, Detail: "no version output"}
	}
	return CheckResult{
		Name:    name,
		OK:      true,
		Version: version,
	}
}

func firstLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[0])
}
