package profile

import (
	"fmt"
	"strings"
)

// Get retrieves a leaf setting by dotted section path, e.g.
// "training.custom-words-action". It fails with *MissingKeyError if any
// segment is absent or a non-section value is traversed.
func Get(doc Document, path string) (any, error) {
	parts := strings.Split(path, ".")
	cur := any(doc)
	for i, part := range parts {
		section, ok := cur.(Document)
		if !ok {
			return nil, &MissingKeyError{Path: strings.Join(parts[:i+1], ".")}
		}
		v, ok := section[part]
		if !ok {
			return nil, &MissingKeyError{Path: strings.Join(parts[:i+1], ".")}
		}
		cur = v
	}
	return cur, nil
}

// Set writes a value at a dotted section path, creating intermediate
// sections as needed. A non-section value along the way is replaced by a
// section. The path must be non-empty.
func Set(doc Document, path string, value any) error {
	if path == "" {
		return fmt.Errorf("profile: empty setting path")
	}
	parts := strings.Split(path, ".")
	cur := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur[part].(Document)
		if !ok {
			next = Document{}
			cur[part] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
	return nil
}

// GetString retrieves a string setting.
func GetString(doc Document, path string) (string, error) {
	v, err := Get(doc, path)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("profile: %s: expected string, got %T", path, v)
	}
	return s, nil
}

// GetStringOr retrieves a string setting, returning def when the key is
// absent or holds a non-string value.
func GetStringOr(doc Document, path, def string) string {
	s, err := GetString(doc, path)
	if err != nil {
		return def
	}
	return s
}

// GetInt retrieves an integer setting. YAML numbers parse as int or float64
// depending on their spelling; both are accepted.
func GetInt(doc Document, path string) (int, error) {
	v, err := Get(doc, path)
	if err != nil {
		return 0, err
	}
	n, ok := asInt(v)
	if !ok {
		return 0, fmt.Errorf("profile: %s: expected integer, got %T", path, v)
	}
	return n, nil
}

// GetIntOr retrieves an integer setting with a default.
func GetIntOr(doc Document, path string, def int) int {
	n, err := GetInt(doc, path)
	if err != nil {
		return def
	}
	return n
}

// GetFloat retrieves a numeric setting as float64.
func GetFloat(doc Document, path string) (float64, error) {
	v, err := Get(doc, path)
	if err != nil {
		return 0, err
	}
	f, ok := asFloat(v)
	if !ok {
		return 0, fmt.Errorf("profile: %s: expected number, got %T", path, v)
	}
	return f, nil
}

// GetFloatOr retrieves a numeric setting with a default.
func GetFloatOr(doc Document, path string, def float64) float64 {
	f, err := GetFloat(doc, path)
	if err != nil {
		return def
	}
	return f
}

// GetBool retrieves a boolean setting.
func GetBool(doc Document, path string) (bool, error) {
	v, err := Get(doc, path)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("profile: %s: expected boolean, got %T", path, v)
	}
	return b, nil
}

// GetBoolOr retrieves a boolean setting with a default.
func GetBoolOr(doc Document, path string, def bool) bool {
	b, err := GetBool(doc, path)
	if err != nil {
		return def
	}
	return b
}

// GetSection retrieves a nested section.
func GetSection(doc Document, path string) (Document, error) {
	v, err := Get(doc, path)
	if err != nil {
		return nil, err
	}
	section, ok := v.(Document)
	if !ok {
		return nil, fmt.Errorf("profile: %s: expected section, got %T", path, v)
	}
	return section, nil
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case uint64:
		return int(t), true
	case float64:
		if t == float64(int(t)) {
			return int(t), true
		}
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}
