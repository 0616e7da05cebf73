package profile

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
)

// Bindings maps session variable names to resolved filesystem paths. Bindings
// are established once per invocation; every ${name} placeholder in a
// document must have an entry here or resolution fails.
type Bindings map[string]string

// SessionBindings returns the standard bindings for one invocation:
//
//	profile_dir  - the chosen profile directory
//	voxjson_dir  - the voxjson installation root
//	machine      - CPU architecture in uname -m style (used by wake-word
//	               defaults to pick the right shared library)
func SessionBindings(profileDir, installDir string) Bindings {
	return Bindings{
		"profile_dir": profileDir,
		"voxjson_dir": installDir,
		"machine":     machineName(),
	}
}

// machineName maps GOARCH to the uname -m spelling used in asset paths.
func machineName() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "arm":
		return "armv7l"
	case "386":
		return "i686"
	default:
		return runtime.GOARCH
	}
}

// InstallRoot returns the voxjson installation directory: $VOXJSON_DIR if
// set, otherwise the directory containing the running executable, otherwise
// the working directory.
func InstallRoot() string {
	if dir := os.Getenv("VOXJSON_DIR"); dir != "" {
		return dir
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

var placeholderRE = regexp.MustCompile(`\$\{([^}]+)\}`)

// Resolve walks every string value in doc and substitutes each ${name}
// occurrence with its binding. Non-string values pass through untouched.
//
// Substitution is textual and non-recursive: a substituted value is not
// re-scanned for further placeholders, so resolution always completes in a
// single pass. A placeholder with no binding fails with
// *UnboundVariableError. The input is not mutated.
func Resolve(doc Document, bindings Bindings) (Document, error) {
	v, err := resolveValue(doc, bindings)
	if err != nil {
		return nil, err
	}
	return v.(Document), nil
}

func resolveValue(v any, bindings Bindings) (any, error) {
	switch t := v.(type) {
	case Document:
		out := make(Document, len(t))
		for k, e := range t {
			r, err := resolveValue(e, bindings)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			r, err := resolveValue(e, bindings)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case string:
		return expand(t, bindings)
	default:
		return v, nil
	}
}

// expand substitutes all placeholders in s in one pass.
func expand(s string, bindings Bindings) (string, error) {
	var unbound string
	out := placeholderRE.ReplaceAllStringFunc(s, func(m string) string {
		name := m[2 : len(m)-1]
		val, ok := bindings[name]
		if !ok {
			if unbound == "" {
				unbound = name
			}
			return m
		}
		return val
	})
	if unbound != "" {
		return "", &UnboundVariableError{Variable: unbound, Value: s}
	}
	return out, nil
}
