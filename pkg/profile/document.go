package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a profile document: a tree of sections holding scalar settings.
// Nested sections are themselves map[string]any; lists are []any.
//
// Document is an alias rather than a defined type so that values interoperate
// directly with encoding/json and gojq.
type Document = map[string]any

// Parse parses YAML data into a Document.
//
// Values tagged !env are environment-expanded at parse time, e.g.
//
//	custom-words-file: !env "${HOME}/words.txt"
//
// An empty input yields an empty Document. A non-mapping top level or a
// non-string key fails with *MalformedDocumentError.
func Parse(data []byte) (Document, error) {
	return ParseNamed(data, "")
}

// ParseNamed is Parse with a source name for error reporting.
func ParseNamed(data []byte, source string) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &MalformedDocumentError{Source: source, Err: err}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty or comment-only input.
		return Document{}, nil
	}

	v, err := decodeNode(root.Content[0])
	if err != nil {
		return nil, &MalformedDocumentError{Source: source, Err: err}
	}
	doc, ok := v.(Document)
	if !ok {
		return nil, &MalformedDocumentError{
			Source: source,
			Err:    fmt.Errorf("top level must be a mapping, got %T", v),
		}
	}
	return doc, nil
}

// decodeNode converts a YAML node to a plain Go value, handling the !env tag.
func decodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		m := make(Document, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
			}
			v, err := decodeNode(valNode)
			if err != nil {
				return nil, err
			}
			m[keyNode.Value] = v
		}
		return m, nil

	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := decodeNode(c)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil

	case yaml.ScalarNode:
		if n.Tag == "!env" {
			return os.ExpandEnv(n.Value), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil

	case yaml.AliasNode:
		return decodeNode(n.Alias)

	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

// Merge deep-merges overlay onto base and returns a fresh document. For keys
// present in both where both values are sections, the merge recurses;
// otherwise the overlay value wins. Sections not mentioned in the overlay are
// preserved whole from base. Neither input is mutated.
func Merge(base, overlay Document) Document {
	out := make(Document, len(base))
	for k, v := range base {
		out[k] = cloneValue(v)
	}
	for k, v := range overlay {
		if bm, ok := out[k].(Document); ok {
			if om, ok := v.(Document); ok {
				out[k] = Merge(bm, om)
				continue
			}
		}
		out[k] = cloneValue(v)
	}
	return out
}

// Clone returns a deep copy of doc.
func Clone(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Document:
		return Clone(t)
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}
