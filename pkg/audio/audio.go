package audio

import (
	"context"
	"time"
)

// Recorder captures a single utterance from an input device. Capture blocks
// the calling flow for up to maxDuration; that is acceptable because it is a
// foreground, user-initiated action.
type Recorder interface {
	// Record returns the captured audio as a WAV container. Capture ends
	// when the speaker falls silent or when maxDuration elapses, whichever
	// comes first; it never runs past maxDuration.
	Record(ctx context.Context, maxDuration time.Duration) ([]byte, error)

	// Probe reports whether an input device can actually be opened.
	Probe() error
}
