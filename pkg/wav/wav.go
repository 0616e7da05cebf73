// Package wav wraps raw PCM buffers in WAV containers and inspects WAV
// headers against a profile's expected audio format. It exists so pipeline
// stages can decide whether the profile's convert-command must run before
// audio is handed to a recognizer.
package wav

import (
	"encoding/binary"
	"fmt"
)

// Format is the audio format triple every profile carries under
// audio.format.
type Format struct {
	// SampleRate in hertz, e.g. 16000.
	SampleRate int

	// BitsPerSample, e.g. 16.
	BitsPerSample int

	// Channels, e.g. 1 for mono.
	Channels int
}

// Matches reports whether other carries the same rate, width, and channel
// count.
func (f Format) Matches(other Format) bool {
	return f == other
}

// headerSize is the fixed size of the RIFF/fmt/data preamble Wrap emits.
const headerSize = 44

// Wrap wraps raw PCM samples in a WAV container with the given format.
func Wrap(raw []byte, f Format) []byte {
	blockAlign := f.Channels * f.BitsPerSample / 8
	byteRate := f.SampleRate * blockAlign

	buf := make([]byte, headerSize, headerSize+len(raw))
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+len(raw)))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], uint16(f.BitsPerSample))

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(raw)))

	return append(buf, raw...)
}

// Info parses a WAV header and returns its format and the PCM payload.
// Chunks other than fmt and data are skipped.
func Info(data []byte) (Format, []byte, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Format{}, nil, fmt.Errorf("wav: not a RIFF/WAVE stream")
	}

	var f Format
	var payload []byte
	haveFmt := false

	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		if body+size > len(data) {
			return Format{}, nil, fmt.Errorf("wav: truncated %s chunk", id)
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return Format{}, nil, fmt.Errorf("wav: fmt chunk too short")
			}
			f.Channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			f.SampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			f.BitsPerSample = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			haveFmt = true
		case "data":
			payload = data[body : body+size]
		}

		// Chunks are word-aligned.
		pos = body + size + size%2
	}

	if !haveFmt {
		return Format{}, nil, fmt.Errorf("wav: missing fmt chunk")
	}
	return f, payload, nil
}

// Duration returns the length in seconds of a raw PCM buffer in this format.
func (f Format) Duration(raw []byte) float64 {
	bytesPerSecond := f.SampleRate * f.Channels * f.BitsPerSample / 8
	if bytesPerSecond == 0 {
		return 0
	}
	return float64(len(raw)) / float64(bytesPerSecond)
}
