package commands

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPrintProfileJSON(t *testing.T) {
	dir := setupProfile(t, "speech-to-text:\n  acoustic-model-type: kaldi\n")

	stdout, _, code := runCmd(t, "print-profile")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	stt, _ := doc["speech-to-text"].(map[string]any)
	if stt["acoustic-model-type"] != "kaldi" {
		t.Errorf("acoustic-model-type = %v, want kaldi", stt["acoustic-model-type"])
	}
	// Unmentioned sections keep their defaults.
	if _, ok := doc["audio"]; !ok {
		t.Error("audio section missing from output")
	}
	// Session variables are resolved.
	if strings.Contains(stdout, "${profile_dir}") {
		t.Error("output contains unresolved ${profile_dir}")
	}
	if !strings.Contains(stdout, dir) {
		t.Errorf("output should contain profile dir %s", dir)
	}
}

func TestPrintProfileYAML(t *testing.T) {
	setupProfile(t, "")

	stdout, _, code := runCmd(t, "print-profile", "-o", "yaml")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "speech-to-text:") {
		t.Errorf("expected YAML output, got: %s", stdout)
	}
}

func TestPrintProfileSettingOverride(t *testing.T) {
	setupProfile(t, "")

	stdout, _, code := runCmd(t, "print-profile", "-s", "voice-command.vad-mode=1")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatal(err)
	}
	vc, _ := doc["voice-command"].(map[string]any)
	if vc["vad-mode"] != float64(1) {
		t.Errorf("vad-mode = %v, want 1", vc["vad-mode"])
	}
}

func TestPrintProfileBadSetting(t *testing.T) {
	setupProfile(t, "")

	_, stderr, code := runCmd(t, "print-profile", "-s", "no-equals-sign")
	if code == 0 {
		t.Fatal("expected failure for malformed setting")
	}
	if !strings.Contains(stderr, "no-equals-sign") {
		t.Errorf("stderr should name the setting, got: %s", stderr)
	}
}

func TestPrintProfileMalformedYAML(t *testing.T) {
	setupProfile(t, "key: [unclosed\n")

	_, _, code := runCmd(t, "print-profile")
	if code == 0 {
		t.Fatal("expected failure for malformed profile.yml")
	}
}

func TestPrintProfileBadFormat(t *testing.T) {
	setupProfile(t, "")

	_, _, code := runCmd(t, "print-profile", "-o", "xml")
	if code == 0 {
		t.Fatal("expected failure for unsupported format")
	}
}
