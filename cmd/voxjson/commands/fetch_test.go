package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newAssetDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestFetchProfileFromDir(t *testing.T) {
	profileDir := setupProfile(t, "")
	src := newAssetDir(t, map[string]string{
		"base_dictionary.txt": "hello H EH L OW",
	})

	stdout, _, code := runCmd(t, "fetch-profile", "--from", src, "base_dictionary.txt")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "fetched 1 asset") {
		t.Errorf("stdout = %s", stdout)
	}

	got, err := os.ReadFile(filepath.Join(profileDir, "base_dictionary.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello H EH L OW" {
		t.Errorf("content = %q", got)
	}
}

func TestFetchProfileSkipsExisting(t *testing.T) {
	profileDir := setupProfile(t, "")
	if err := os.WriteFile(filepath.Join(profileDir, "g2p.fst"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := newAssetDir(t, map[string]string{"g2p.fst": "new"})

	stdout, _, code := runCmd(t, "fetch-profile", "--from", src, "g2p.fst")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "already present: g2p.fst") {
		t.Errorf("stdout = %s", stdout)
	}

	got, _ := os.ReadFile(filepath.Join(profileDir, "g2p.fst"))
	if string(got) != "old" {
		t.Errorf("existing asset was overwritten: %q", got)
	}
}

func TestFetchProfileMissingAsset(t *testing.T) {
	setupProfile(t, "")
	src := newAssetDir(t, nil)

	_, _, code := runCmd(t, "fetch-profile", "--from", src, "no-such-asset")
	if code == 0 {
		t.Fatal("expected failure for missing source asset")
	}
}

func TestFetchProfileRequiresFrom(t *testing.T) {
	setupProfile(t, "")

	if _, _, code := runCmd(t, "fetch-profile", "x"); code == 0 {
		t.Error("fetch-profile without --from should fail")
	}
}

func TestOpenStoreS3URL(t *testing.T) {
	if _, err := openStore("s3://"); err == nil {
		t.Error("empty bucket should be rejected")
	}
	store, err := openStore("s3://bucket/prefix/sub")
	if err != nil {
		t.Fatalf("openStore error: %v", err)
	}
	if store == nil {
		t.Fatal("expected a store")
	}
}
