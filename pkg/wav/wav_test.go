package wav

import (
	"bytes"
	"testing"
)

var mono16k = Format{SampleRate: 16000, BitsPerSample: 16, Channels: 1}

func TestWrapAndInfo(t *testing.T) {
	raw := bytes.Repeat([]byte{0x01, 0x02}, 1600)

	data := Wrap(raw, mono16k)
	f, payload, err := Info(data)
	if err != nil {
		t.Fatalf("Info error: %v", err)
	}
	if !f.Matches(mono16k) {
		t.Errorf("format = %+v, want %+v", f, mono16k)
	}
	if !bytes.Equal(payload, raw) {
		t.Errorf("payload length = %d, want %d", len(payload), len(raw))
	}
}

func TestInfoDetectsMismatch(t *testing.T) {
	stereo44k := Format{SampleRate: 44100, BitsPerSample: 16, Channels: 2}
	data := Wrap(make([]byte, 4), stereo44k)

	f, _, err := Info(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.Matches(mono16k) {
		t.Error("44.1kHz stereo should not match 16kHz mono")
	}
}

func TestInfoRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte("short"),
		[]byte("RIFFxxxxJUNK"),
		bytes.Repeat([]byte{0}, 64),
	} {
		if _, _, err := Info(data); err == nil {
			t.Errorf("Info(%q...) should fail", data)
		}
	}
}

func TestInfoTruncatedChunk(t *testing.T) {
	data := Wrap(make([]byte, 100), mono16k)
	if _, _, err := Info(data[:50]); err == nil {
		t.Error("Info on truncated data should fail")
	}
}

func TestDuration(t *testing.T) {
	// One second of 16-bit mono at 16kHz is 32000 bytes.
	raw := make([]byte, 32000)
	if got := mono16k.Duration(raw); got != 1.0 {
		t.Errorf("Duration = %v, want 1.0", got)
	}
	if got := (Format{}).Duration(raw); got != 0 {
		t.Errorf("Duration with zero format = %v, want 0", got)
	}
}
