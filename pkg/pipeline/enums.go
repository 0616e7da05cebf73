package pipeline

import (
	"fmt"
	"strings"
)

// AcousticModel identifies the speech-to-text engine a profile targets.
type AcousticModel string

// Acoustic model constants.
const (
	ModelPocketsphinx AcousticModel = "pocketsphinx" // default
	ModelKaldi        AcousticModel = "kaldi"
	ModelJulius       AcousticModel = "julius"
	ModelDeepSpeech   AcousticModel = "deepspeech"
)

var validAcousticModels = map[string]struct{}{
	string(ModelPocketsphinx): {},
	string(ModelKaldi):        {},
	string(ModelJulius):       {},
	string(ModelDeepSpeech):   {},
}

// IsValid returns true if the acoustic model type is valid.
func (m AcousticModel) IsValid() bool {
	if m == "" {
		return true // empty defaults to pocketsphinx
	}
	_, ok := validAcousticModels[string(m)]
	return ok
}

// ParseAcousticModel validates a profile value. Empty defaults to
// pocketsphinx.
func ParseAcousticModel(s string) (AcousticModel, error) {
	m := AcousticModel(s)
	if !m.IsValid() {
		return "", fmt.Errorf("pipeline: invalid acoustic model type: %q", s)
	}
	if m == "" {
		m = ModelPocketsphinx
	}
	return m, nil
}

// WordsAction controls how custom words are applied to the profile
// dictionary during training.
type WordsAction string

// Words action constants.
const (
	WordsAppend          WordsAction = "append" // default
	WordsOverwriteOnce   WordsAction = "overwrite_once"
	WordsOverwriteAlways WordsAction = "overwrite_always"
)

var validWordsActions = map[string]struct{}{
	string(WordsAppend):          {},
	string(WordsOverwriteOnce):   {},
	string(WordsOverwriteAlways): {},
}

// IsValid returns true if the words action is valid.
func (a WordsAction) IsValid() bool {
	if a == "" {
		return true // empty defaults to append
	}
	_, ok := validWordsActions[string(a)]
	return ok
}

// ParseWordsAction validates a profile value. Empty defaults to append.
func ParseWordsAction(s string) (WordsAction, error) {
	a := WordsAction(s)
	if !a.IsValid() {
		return "", fmt.Errorf("pipeline: invalid custom-words-action: %q (must be %q, %q, or %q)",
			s, WordsAppend, WordsOverwriteOnce, WordsOverwriteAlways)
	}
	if a == "" {
		a = WordsAppend
	}
	return a, nil
}

// WordCasing controls how transcribed and trained words are case-folded.
type WordCasing string

// Word casing constants.
const (
	CasingIgnore WordCasing = "ignore" // default
	CasingUpper  WordCasing = "upper"
	CasingLower  WordCasing = "lower"
)

var validWordCasings = map[string]struct{}{
	string(CasingIgnore): {},
	string(CasingUpper):  {},
	string(CasingLower):  {},
}

// IsValid returns true if the word casing is valid.
func (c WordCasing) IsValid() bool {
	if c == "" {
		return true // empty defaults to ignore
	}
	_, ok := validWordCasings[string(c)]
	return ok
}

// ParseWordCasing validates a profile value. Empty defaults to ignore.
func ParseWordCasing(s string) (WordCasing, error) {
	c := WordCasing(s)
	if !c.IsValid() {
		return "", fmt.Errorf("pipeline: invalid word-casing: %q (must be %q, %q, or %q)",
			s, CasingIgnore, CasingUpper, CasingLower)
	}
	if c == "" {
		c = CasingIgnore
	}
	return c, nil
}

// Apply folds a word according to the casing rule.
func (c WordCasing) Apply(word string) string {
	switch c {
	case CasingUpper:
		return strings.ToUpper(word)
	case CasingLower:
		return strings.ToLower(word)
	default:
		return word
	}
}
