// Package pipeline provides typed settings views over a resolved profile,
// one per pipeline stage: speech-to-text, intent recognition, training,
// wake-word detection, voice-command segmentation, text-to-speech, and audio
// I/O.
//
// The profile resolver treats every value as an opaque scalar; this package
// is where enumerated settings become closed types and where command
// templates get their stage-level placeholders expanded. Invalid enumeration
// values are caught here, before any stage runs.
package pipeline
