package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunAskWithScript(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeTestFile(t, dir, "manifest.yml", envVerboseManifest)
	session := testSession(t, dir)
	session.AnswersScript = writeTestFile(t, dir, "script.yml", "- choose: dev\n- choose: \"Yes\"\n")

	tests := []struct {
		format string
		want   string
	}{
		{format: formatShell, want: "--env dev --verbose\n"},
		{format: formatLines, want: "--env\ndev\n--verbose\n"},
		{format: formatJSON, want: "[\"--env\",\"dev\",\"--verbose\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			opts := askOptions{Session: session, ManifestArg: manifestPath, Format: tt.format}
			if err := runAsk(context.Background(), opts, strings.NewReader(""), &stdout, &stderr); err != nil {
				t.Fatalf("runAsk: %v", err)
			}
			if stdout.String() != tt.want {
				t.Fatalf("stdout = %q, want %q", stdout.String(), tt.want)
			}
			if !strings.Contains(stderr.String(), "2 variable(s) in api") {
				t.Fatalf("expected status line on stderr, got %q", stderr.String())
			}
		})
	}
}

func TestRunAskWithTerminalInput(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "manifest.yml", envVerboseManifest)
	session := testSession(t, dir)

	var stdout, stderr bytes.Buffer
	opts := askOptions{Session: session, ManifestArg: dir, Format: formatShell}
	if err := runAsk(context.Background(), opts, strings.NewReader("2\nno\n"), &stdout, &stderr); err != nil {
		t.Fatalf("runAsk: %v", err)
	}
	if stdout.String() != "--env dev --no-verbose\n" {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "1) prod") {
		t.Fatalf("expected choices on stderr, got %q", stderr.String())
	}
}

func TestRunAskAllDismissed(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeTestFile(t, dir, "manifest.yml", envVerboseManifest)
	session := testSession(t, dir)

	var stdout bytes.Buffer
	opts := askOptions{Session: session, ManifestArg: manifestPath, Format: formatJSON}
	if err := runAsk(context.Background(), opts, strings.NewReader(""), &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("runAsk: %v", err)
	}
	// The dismissed bool still counts as "No".
	if stdout.String() != "[\"--no-verbose\"]\n" {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
}

func TestRunAskPrintsAnswers(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeTestFile(t, dir, "manifest.yml", envVerboseManifest)
	session := testSession(t, dir)
	session.AnswersScript = "-"

	var stdout bytes.Buffer
	opts := askOptions{Session: session, ManifestArg: manifestPath, Answers: true}
	script := strings.NewReader("- dismiss: true\n- choose: \"Yes\"\n")
	if err := runAsk(context.Background(), opts, script, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("runAsk: %v", err)
	}
	want := "env: null\nverbose: true\n"
	if stdout.String() != want {
		t.Fatalf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunAskUnknownFormatFailsBeforePrompting(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeTestFile(t, dir, "manifest.yml", envVerboseManifest)
	session := testSession(t, dir)

	var stderr bytes.Buffer
	opts := askOptions{Session: session, ManifestArg: manifestPath, Format: "jsn"}
	err := runAsk(context.Background(), opts, strings.NewReader("1\n1\n"), &bytes.Buffer{}, &stderr)
	if err == nil || !strings.Contains(err.Error(), `unknown format "jsn"`) {
		t.Fatalf("expected unknown format error, got %v", err)
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected no prompts before the format check, got %q", stderr.String())
	}
}

func TestRunAskMissingManifest(t *testing.T) {
	dir := t.TempDir()
	session := testSession(t, dir)

	opts := askOptions{Session: session, ManifestArg: dir}
	if err := runAsk(context.Background(), opts, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for directory without manifest")
	}
}

func TestRunAskUsesConfiguredManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeTestFile(t, dir, "templates/api/manifest.yml", envVerboseManifest)
	session := testSession(t, dir)
	session.ConfigPath = writeTestFile(t, dir, ".promptflags.yml", "manifest: "+manifestPath+"\n")

	var stdout bytes.Buffer
	opts := askOptions{Session: session, Format: formatShell}
	if err := runAsk(context.Background(), opts, strings.NewReader("prod\nyes\n"), &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("runAsk: %v", err)
	}
	if stdout.String() != "--env prod --verbose\n" {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
}
