// Package profile implements the layered profile configuration used by every
// voxjson pipeline stage.
//
// A profile is a YAML document of named sections (speech-to-text,
// intent-recognition, training, wake-word, voice-command, text-to-speech,
// audio). Settings shipped with voxjson form the default layer; a per-user
// profile.yml is merged on top of it section by section, so unset keys fall
// through to the defaults.
//
// String values may reference session variables such as ${profile_dir} and
// ${voxjson_dir}. Resolution is a single textual pass: substituted values are
// never re-scanned, which bounds expansion and rules out cycles. The resolved
// document is computed fresh at every invocation and never persisted.
//
// The resolver treats all values as opaque scalars. Semantic validation of
// enumerated settings happens in the consuming stage (see package pipeline).
package profile
