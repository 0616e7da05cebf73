package commands

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestGetSinglePath(t *testing.T) {
	setupProfile(t, "")

	stdout, _, code := runCmd(t, "get", "voice-command.vad-mode")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.TrimSpace(stdout) != "3" {
		t.Errorf("stdout = %q, want 3", stdout)
	}
}

func TestGetMultiplePaths(t *testing.T) {
	setupProfile(t, "")

	stdout, _, code := runCmd(t, "get",
		"audio.format.sample-rate-hertz",
		"training.custom-words-action")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), stdout)
	}
	if lines[0] != "16000" || lines[1] != `"append"` {
		t.Errorf("lines = %q", lines)
	}
}

func TestGetResolvedPath(t *testing.T) {
	dir := setupProfile(t, "")

	stdout, _, code := runCmd(t, "get", "speech-to-text.dictionary")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := `"` + filepath.Join(dir, "dictionary.txt") + `"`
	if strings.TrimSpace(stdout) != want {
		t.Errorf("stdout = %q, want %q", strings.TrimSpace(stdout), want)
	}
}

func TestGetMissingPath(t *testing.T) {
	setupProfile(t, "")

	_, stderr, code := runCmd(t, "get", "speech-to-text.no-such-key")
	if code == 0 {
		t.Fatal("expected failure for unknown path")
	}
	if !strings.Contains(stderr, "speech-to-text.no-such-key") {
		t.Errorf("stderr should name the path, got: %s", stderr)
	}
}

func TestGetQuery(t *testing.T) {
	setupProfile(t, "")

	stdout, _, code := runCmd(t, "get", "-q", `.audio.format."sample-rate-hertz"`)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.TrimSpace(stdout) != "16000" {
		t.Errorf("stdout = %q, want 16000", stdout)
	}
}

func TestGetQueryInvalid(t *testing.T) {
	setupProfile(t, "")

	_, _, code := runCmd(t, "get", "-q", ".[invalid")
	if code == 0 {
		t.Fatal("expected failure for invalid jq expression")
	}
}

func TestGetArgsValidation(t *testing.T) {
	setupProfile(t, "")

	if _, _, code := runCmd(t, "get"); code == 0 {
		t.Error("get without paths or query should fail")
	}
	if _, _, code := runCmd(t, "get", "audio", "-q", ".audio"); code == 0 {
		t.Error("get with both paths and query should fail")
	}
}
