package audio_test

import (
	"encoding/binary"
	"testing"

	"interview-assistant-be/pkg/audio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAVHeader(t *testing.T) {
	samples := []int16{0, 100, -100, 32767, -32768}
	out := audio.EncodeWAV(samples, 16000)

	require.Len(t, out, 44+len(samples)*2)

	assert.Equal(t, "RIFF", string(out[0:4]))
	assert.Equal(t, "WAVE", string(out[8:12]))
	assert.Equal(t, "fmt ", string(out[12:16]))
	assert.Equal(t, "data", string(out[36:40]))

	fileSize := binary.LittleEndian.Uint32(out[4:8])
	assert.Equal(t, uint32(36+len(samples)*2), fileSize)

	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[20:22]), "PCM format")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[22:24]), "mono")
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(out[24:28]))
	assert.Equal(t, uint32(32000), binary.LittleEndian.Uint32(out[28:32]), "byte rate")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(out[32:34]), "block align")
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(out[34:36]), "bits per sample")

	dataSize := binary.LittleEndian.Uint32(out[40:44])
	assert.Equal(t, uint32(len(samples)*2), dataSize)
}

func TestEncodeWAVSamplesLittleEndian(t *testing.T) {
	out := audio.EncodeWAV([]int16{0x0102}, 44100)

	require.Len(t, out, 46)
	assert.Equal(t, byte(0x02), out[44])
	assert.Equal(t, byte(0x01), out[45])
}

func TestEncodeWAVEmpty(t *testing.T) {
	out := audio.EncodeWAV(nil, 16000)

	require.Len(t, out, 44)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(out[40:44]))
}
