package profile

import (
	_ "embed"
	"sync"
)

//go:embed defaults.yml
var defaultsYAML []byte

var (
	defaultsOnce sync.Once
	defaultsDoc  Document
)

// Defaults returns the shipped default profile document. The returned
// document is a fresh deep copy; callers may merge into or mutate it freely.
func Defaults() Document {
	defaultsOnce.Do(func() {
		doc, err := ParseNamed(defaultsYAML, "defaults")
		if err != nil {
			// The template is embedded at build time; failing to parse it is
			// a programming error, not a runtime condition.
			panic(err)
		}
		defaultsDoc = doc
	})
	return Clone(defaultsDoc)
}
