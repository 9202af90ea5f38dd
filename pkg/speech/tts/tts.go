// Package tts defines the text-to-speech contract. Synthesis is an opaque
// external service; the pipeline only needs an audio artifact on disk it can
// hand to the host's media player.
package tts

import "context"

// Synthesizer converts text to audio.
type Synthesizer interface {
	// Synthesize returns encoded audio (MP3) for the given text.
	Synthesize(ctx context.Context, text string) ([]byte, error)

	// SynthesizeToFile writes the synthesized audio to path.
	SynthesizeToFile(ctx context.Context, text, path string) error
}
