package pipeline

import (
	"github.com/voxjson/voxjson/pkg/profile"
	"github.com/voxjson/voxjson/pkg/wav"
)

// SpeechToText holds the resolved settings for the transcription stage.
type SpeechToText struct {
	Model AcousticModel

	// AcousticModelDir holds the engine's model files.
	AcousticModelDir string

	// Base artifacts ship with the profile and back open transcription;
	// the plain Dictionary/LanguageModel pair is produced by training.
	BaseDictionary    string
	Dictionary        string
	BaseLanguageModel string
	LanguageModel     string

	// Pocketsphinx-only: channel adaptation matrix.
	MLLRMatrix string

	// Kaldi-only settings.
	KaldiModelType string
	KaldiBaseGraph string
	KaldiGraph     string
}

// SpeechToTextFromProfile builds the transcription stage settings,
// validating the acoustic model enumeration.
func SpeechToTextFromProfile(p *profile.Profile) (SpeechToText, error) {
	model, err := ParseAcousticModel(profile.GetStringOr(p.Doc, "speech-to-text.acoustic-model-type", ""))
	if err != nil {
		return SpeechToText{}, err
	}
	return SpeechToText{
		Model:             model,
		AcousticModelDir:  p.Path("speech-to-text.acoustic-model", "acoustic_model"),
		BaseDictionary:    p.Path("speech-to-text.base-dictionary", "base_dictionary.txt"),
		Dictionary:        p.Path("speech-to-text.dictionary", "dictionary.txt"),
		BaseLanguageModel: p.Path("speech-to-text.base-language-model", "base_language_model.txt"),
		LanguageModel:     p.Path("speech-to-text.language-model", "language_model.txt"),
		MLLRMatrix:        p.Path("speech-to-text.pocketsphinx.mllr-matrix", "mllr_matrix"),
		KaldiModelType:    profile.GetStringOr(p.Doc, "speech-to-text.kaldi.model-type", ""),
		KaldiBaseGraph:    p.Path("speech-to-text.kaldi.base-graph-directory", "acoustic_model/model/graph"),
		KaldiGraph:        p.Path("speech-to-text.kaldi.graph-directory", "acoustic_model/graph"),
	}, nil
}

// IntentRecognition holds the resolved settings for the intent stage.
type IntentRecognition struct {
	// IntentGraph is the trained intent transducer.
	IntentGraph string

	// StopWords lists common words fuzzy matching may ignore.
	StopWords string

	// Fuzzy enables stop-word and word-order tolerant matching.
	Fuzzy bool
}

// IntentRecognitionFromProfile builds the intent stage settings.
func IntentRecognitionFromProfile(p *profile.Profile) IntentRecognition {
	return IntentRecognition{
		IntentGraph: p.Path("intent-recognition.intent-graph", "intent.fst"),
		StopWords:   p.Path("intent-recognition.stop-words", "stop_words.txt"),
		Fuzzy:       profile.GetBoolOr(p.Doc, "intent-recognition.fuzzy", true),
	}
}

// Training holds the resolved settings for profile training.
type Training struct {
	SentencesFile   string
	CustomWordsFile string
	WordsAction     WordsAction
	WordCasing      WordCasing
	ReplaceNumbers  bool
	GrammarDir      string
	SlotsDir        string
	G2PModel        string
	G2PCorpus       string
}

// TrainingFromProfile builds the training stage settings, validating both
// enumerations.
func TrainingFromProfile(p *profile.Profile) (Training, error) {
	action, err := ParseWordsAction(profile.GetStringOr(p.Doc, "training.custom-words-action", ""))
	if err != nil {
		return Training{}, err
	}
	casing, err := ParseWordCasing(profile.GetStringOr(p.Doc, "training.word-casing", ""))
	if err != nil {
		return Training{}, err
	}
	return Training{
		SentencesFile:   p.Path("training.sentences-file", "sentences.ini"),
		CustomWordsFile: p.Path("training.custom-words-file", "custom_words.txt"),
		WordsAction:     action,
		WordCasing:      casing,
		ReplaceNumbers:  profile.GetBoolOr(p.Doc, "training.replace-numbers", true),
		GrammarDir:      p.Path("training.grammar-directory", "grammars"),
		SlotsDir:        p.Path("training.slots-directory", "slots"),
		G2PModel:        p.Path("training.g2p-model", "g2p.fst"),
		G2PCorpus:       p.Path("training.g2p-corpus", "g2p.corpus"),
	}, nil
}

// WakeWord holds the resolved settings for wake-word detection.
type WakeWord struct {
	System      string
	Sensitivity float64

	// Porcupine engine files; the library path is architecture-specific.
	LibraryFile string
	ParamsFile  string
	KeywordFile string
}

// WakeWordFromProfile builds the wake-word stage settings.
func WakeWordFromProfile(p *profile.Profile) WakeWord {
	return WakeWord{
		System:      profile.GetStringOr(p.Doc, "wake-word.system", "porcupine"),
		Sensitivity: profile.GetFloatOr(p.Doc, "wake-word.sensitivity", 0.5),
		LibraryFile: p.Path("wake-word.porcupine.library-file", ""),
		ParamsFile:  p.Path("wake-word.porcupine.params-file", ""),
		KeywordFile: p.Path("wake-word.porcupine.keyword-file", ""),
	}
}

// VoiceCommand holds the resolved settings for voice-command segmentation.
type VoiceCommand struct {
	System string

	// VADMode is the detector aggressiveness (0-3).
	VADMode int

	MinSeconds     float64
	MaxSeconds     float64
	SpeechSeconds  float64
	SilenceSeconds float64
	BeforeSeconds  float64
	ChunkSize      int
}

// VoiceCommandFromProfile builds the segmentation stage settings.
func VoiceCommandFromProfile(p *profile.Profile) VoiceCommand {
	return VoiceCommand{
		System:         profile.GetStringOr(p.Doc, "voice-command.system", "webrtcvad"),
		VADMode:        profile.GetIntOr(p.Doc, "voice-command.vad-mode", 3),
		MinSeconds:     profile.GetFloatOr(p.Doc, "voice-command.minimum-seconds", 2),
		MaxSeconds:     profile.GetFloatOr(p.Doc, "voice-command.maximum-seconds", 30),
		SpeechSeconds:  profile.GetFloatOr(p.Doc, "voice-command.speech-seconds", 0.3),
		SilenceSeconds: profile.GetFloatOr(p.Doc, "voice-command.silence-seconds", 0.5),
		BeforeSeconds:  profile.GetFloatOr(p.Doc, "voice-command.before-seconds", 0.25),
		ChunkSize:      profile.GetIntOr(p.Doc, "voice-command.chunk-size", 960),
	}
}

// TextToSpeech holds the resolved settings for speech synthesis.
type TextToSpeech struct {
	// PhonemeMap translates dictionary phonemes to espeak phonemes.
	PhonemeMap string

	// PronounceCommand speaks raw phonemes ({phonemes} placeholder);
	// SpeakCommand speaks a sentence ({sentence} placeholder).
	PronounceCommand CommandTemplate
	SpeakCommand     CommandTemplate
}

// TextToSpeechFromProfile builds the synthesis stage settings.
func TextToSpeechFromProfile(p *profile.Profile) TextToSpeech {
	return TextToSpeech{
		PhonemeMap:       p.Path("text-to-speech.espeak.phoneme-map", "espeak_phonemes.txt"),
		PronounceCommand: CommandTemplate(profile.GetStringOr(p.Doc, "text-to-speech.espeak.pronounce-command", "espeak-ng -s 80 [[{phonemes}]]")),
		SpeakCommand:     CommandTemplate(profile.GetStringOr(p.Doc, "text-to-speech.espeak.speak-command", "espeak-ng {sentence}")),
	}
}

// Audio holds the resolved audio I/O settings.
type Audio struct {
	RecordCommand  CommandTemplate
	ConvertCommand CommandTemplate
	PlayCommand    CommandTemplate
	Format         wav.Format
}

// AudioFromProfile builds the audio I/O settings.
func AudioFromProfile(p *profile.Profile) Audio {
	return Audio{
		RecordCommand:  CommandTemplate(profile.GetStringOr(p.Doc, "audio.record-command", "arecord -q -r 16000 -c 1 -f S16_LE -t raw")),
		ConvertCommand: CommandTemplate(profile.GetStringOr(p.Doc, "audio.convert-command", "sox -t wav - -r 16000 -e signed-integer -b 16 -c 1 -t wav -")),
		PlayCommand:    CommandTemplate(profile.GetStringOr(p.Doc, "audio.play-command", "aplay -q -t wav")),
		Format: wav.Format{
			SampleRate:    profile.GetIntOr(p.Doc, "audio.format.sample-rate-hertz", 16000),
			BitsPerSample: profile.GetIntOr(p.Doc, "audio.format.sample-width-bits", 16),
			Channels:      profile.GetIntOr(p.Doc, "audio.format.channel-count", 1),
		},
	}
}

// NeedsConversion reports whether WAV data must be passed through the
// profile's convert-command before a stage consumes it.
func (a Audio) NeedsConversion(wavData []byte) (bool, error) {
	f, _, err := wav.Info(wavData)
	if err != nil {
		return false, err
	}
	return !f.Matches(a.Format), nil
}
