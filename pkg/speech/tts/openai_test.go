package tts_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"interview-assistant-be/pkg/speech/tts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeRequestsMp3(t *testing.T) {
	mp3 := []byte{0x49, 0x44, 0x33, 0x04}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/speech", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "tts-1", payload["model"])
		assert.Equal(t, "alloy", payload["voice"])
		assert.Equal(t, "Hello there", payload["input"])
		assert.Equal(t, "mp3", payload["response_format"])

		w.Write(mp3)
	}))
	defer server.Close()

	client := tts.NewOpenAIClientWithURL("test-key", "tts-1", "alloy", server.URL)

	audio, err := client.Synthesize(context.Background(), "Hello there")
	require.NoError(t, err)
	assert.Equal(t, mp3, audio)
}

func TestSynthesizeToFileWritesAudio(t *testing.T) {
	mp3 := []byte{0x49, 0x44, 0x33}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(mp3)
	}))
	defer server.Close()

	client := tts.NewOpenAIClientWithURL("test-key", "tts-1", "alloy", server.URL)

	path := filepath.Join(t.TempDir(), "answer.mp3")
	require.NoError(t, client.SynthesizeToFile(context.Background(), "Hello", path))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mp3, written)
}

func TestSynthesizeApiError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid voice"}}`))
	}))
	defer server.Close()

	client := tts.NewOpenAIClientWithURL("test-key", "tts-1", "nope", server.URL)

	_, err := client.Synthesize(context.Background(), "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speech API error 400")
}
