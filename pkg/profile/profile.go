package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ProfileFile is the per-profile override document filename.
	ProfileFile = "profile.yml"

	// configDirName is the directory name under the XDG config home.
	configDirName = "voxjson"
)

// Profile is the fully-resolved settings view for one invocation. It is
// constructed by Open, treated as immutable afterwards, and discarded on
// exit; it is never written back to disk.
type Profile struct {
	// Dir is the profile directory all relative asset paths hang off.
	Dir string

	// InstallDir is the voxjson installation root.
	InstallDir string

	// Doc is the merged and resolved document.
	Doc Document
}

// Setting is a single command-line override applied after the per-profile
// layer.
type Setting struct {
	Path  string
	Value any
}

// ParseSetting parses a "section.key=value" override. The value is decoded
// as JSON where possible (numbers, booleans, quoted strings, structures) and
// falls back to the literal string otherwise.
func ParseSetting(s string) (Setting, error) {
	path, raw, ok := strings.Cut(s, "=")
	if !ok || path == "" {
		return Setting{}, fmt.Errorf("profile: invalid setting %q (want path=value)", s)
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		v = raw
	}
	return Setting{Path: path, Value: v}, nil
}

// Options configures Open.
type Options struct {
	// ProfilePath is an explicit override document path. When empty,
	// Dir/profile.yml is used (and may be absent).
	ProfilePath string

	// Settings are command-line overrides applied after the override layer.
	Settings []Setting

	// InstallDir overrides the detected installation root.
	InstallDir string
}

// DefaultDir returns the profile directory used when none is given:
// $XDG_CONFIG_HOME/voxjson, falling back to ~/.config/voxjson.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("profile: cannot determine config directory: %w", err)
	}
	return filepath.Join(home, ".config", configDirName), nil
}

// Open loads the layered configuration for one invocation: shipped defaults,
// then the profile's override document, then command-line settings, and
// finally resolves all session variables. Any parse, binding, or path error
// is fatal to the invocation; no partially-resolved view is ever returned.
func Open(dir string, opts *Options) (*Profile, error) {
	if opts == nil {
		opts = &Options{}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("profile: resolve directory %s: %w", dir, err)
	}

	doc := Defaults()

	overridePath := opts.ProfilePath
	if overridePath == "" {
		overridePath = filepath.Join(absDir, ProfileFile)
	}
	data, err := os.ReadFile(overridePath)
	switch {
	case err == nil:
		slog.Debug("loading profile overrides", "path", overridePath)
		overlay, err := ParseNamed(data, overridePath)
		if err != nil {
			return nil, err
		}
		doc = Merge(doc, overlay)
	case os.IsNotExist(err) && opts.ProfilePath == "":
		slog.Warn("profile.yml not found, using default settings", "path", overridePath)
	default:
		return nil, fmt.Errorf("profile: read %s: %w", overridePath, err)
	}

	for _, s := range opts.Settings {
		slog.Debug("overriding setting", "path", s.Path, "value", s.Value)
		if err := Set(doc, s.Path, s.Value); err != nil {
			return nil, err
		}
	}

	installDir := opts.InstallDir
	if installDir == "" {
		installDir = InstallRoot()
	}

	resolved, err := Resolve(doc, SessionBindings(absDir, installDir))
	if err != nil {
		return nil, err
	}

	return &Profile{Dir: absDir, InstallDir: installDir, Doc: resolved}, nil
}

// Get retrieves a setting from the resolved document by dotted path.
func (p *Profile) Get(path string) (any, error) {
	return Get(p.Doc, path)
}

// Path returns the configured path at query, or fallback joined to the
// profile directory when the setting is absent or empty. An empty fallback
// yields "".
func (p *Profile) Path(query, fallback string) string {
	if s, err := GetString(p.Doc, query); err == nil && s != "" {
		return s
	}
	if fallback == "" {
		return ""
	}
	return filepath.Join(p.Dir, fallback)
}
