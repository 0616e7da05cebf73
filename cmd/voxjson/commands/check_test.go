package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckProfileUntrained(t *testing.T) {
	setupProfile(t, "")

	stdout, stderr, code := runCmd(t, "check-profile")
	if code == 0 {
		t.Fatal("untrained profile should fail the check")
	}
	if !strings.Contains(stdout, "dictionary.txt") {
		t.Errorf("stdout should list missing dictionary, got: %s", stdout)
	}
	if !strings.Contains(stderr, "missing") {
		t.Errorf("stderr should mention missing artifacts, got: %s", stderr)
	}
}

func TestCheckProfileTrained(t *testing.T) {
	dir := setupProfile(t, "")
	for _, name := range []string{"dictionary.txt", "language_model.txt", "intent.fst"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	stdout, _, code := runCmd(t, "check-profile")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "trained") {
		t.Errorf("expected success message, got: %s", stdout)
	}
}
