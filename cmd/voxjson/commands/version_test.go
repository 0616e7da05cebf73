package commands

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	stdout, _, code := runCmd(t, "version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "voxjson") {
		t.Fatalf("expected 'voxjson', got: %s", stdout)
	}
}
