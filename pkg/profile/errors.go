package profile

import "fmt"

// MalformedDocumentError reports input that could not be parsed as a profile
// document (invalid YAML, or a top level that is not a mapping with string
// keys).
type MalformedDocumentError struct {
	// Source identifies where the document came from (file path, "defaults",
	// "setting", ...). May be empty.
	Source string

	// Err is the underlying parse error, if any.
	Err error
}

func (e *MalformedDocumentError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("profile: malformed document %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("profile: malformed document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// UnboundVariableError reports a ${name} placeholder with no session binding.
type UnboundVariableError struct {
	// Variable is the placeholder name that has no binding.
	Variable string

	// Value is the full string value the placeholder appeared in.
	Value string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("profile: unbound variable %q in %q", e.Variable, e.Value)
}

// MissingKeyError reports a lookup of a setting that is not present in the
// document and has no applicable default.
type MissingKeyError struct {
	// Path is the dotted section path that failed to resolve.
	Path string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("profile: missing key %q", e.Path)
}
