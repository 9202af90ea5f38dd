// Package stt defines the speech-to-text contract. Recognition itself is an
// opaque external service; the pipeline only needs recognized text or a
// not-understood failure.
package stt

import "context"

// Transcriber converts captured audio (a WAV container) to text.
type Transcriber interface {
	// Transcribe returns the recognized text. An empty string with a nil
	// error means the audio held no recognizable speech.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
