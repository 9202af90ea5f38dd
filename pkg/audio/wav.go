package audio

import (
	"bytes"
	"encoding/binary"
)

// EncodeWAV wraps 16-bit mono PCM samples in a WAV container.
func EncodeWAV(samples []int16, sampleRate int) []byte {
	var buf bytes.Buffer

	dataSize := len(samples) * 2
	fileSize := 36 + dataSize

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, int32(fileSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, int32(16))             // chunk size
	binary.Write(&buf, binary.LittleEndian, int16(1))              // PCM
	binary.Write(&buf, binary.LittleEndian, int16(1))              // mono
	binary.Write(&buf, binary.LittleEndian, int32(sampleRate))     // sample rate
	binary.Write(&buf, binary.LittleEndian, int32(sampleRate*2))   // byte rate
	binary.Write(&buf, binary.LittleEndian, int16(2))              // block align
	binary.Write(&buf, binary.LittleEndian, int16(16))             // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, int32(dataSize))
	for _, sample := range samples {
		binary.Write(&buf, binary.LittleEndian, sample)
	}

	return buf.Bytes()
}
