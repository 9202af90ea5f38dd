//go:build !portaudio
// +build !portaudio

package audio

import (
	"context"
	"fmt"
	"time"

	"interview-assistant-be/internal/pkg/logger"
)

// Microphone stub when portaudio support is not built in. Probe fails, so
// capability detection disables speech input instead of the process dying.
type Microphone struct {
	logger logger.ILogger
}

func NewMicrophone(sampleRate int, log logger.ILogger) *Microphone {
	return &Microphone{logger: log}
}

func (m *Microphone) Probe() error {
	return fmt.Errorf("microphone support not built in: rebuild with -tags portaudio")
}

func (m *Microphone) Record(_ context.Context, _ time.Duration) ([]byte, error) {
	return nil, fmt.Errorf("microphone not available")
}
