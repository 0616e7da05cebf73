package pipeline

import (
	"os"

	"github.com/voxjson/voxjson/pkg/profile"
)

// CheckTrained returns the trained artifacts a profile is missing. Stages
// that transcribe or recognize need all three; an empty result means the
// profile is ready.
func CheckTrained(p *profile.Profile) []string {
	paths := []string{
		p.Path("speech-to-text.dictionary", "dictionary.txt"),
		p.Path("speech-to-text.language-model", "language_model.txt"),
		p.Path("intent-recognition.intent-graph", "intent.fst"),
	}

	var missing []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}
