//go:build portaudio
// +build portaudio

package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/gordonklaus/portaudio"

	"interview-assistant-be/internal/pkg/logger"
)

const framesPerBuffer = 1024

// Microphone captures from the default input device via portaudio. Each
// Record call owns the device for its duration; the pipeline guarantees no
// concurrent captures.
type Microphone struct {
	sampleRate int
	logger     logger.ILogger

	// Samples quieter than this count as silence.
	silenceThreshold int16
	// Silence this long after speech ends the capture early.
	trailingSilence time.Duration
}

func NewMicrophone(sampleRate int, log logger.ILogger) *Microphone {
	return &Microphone{
		sampleRate:       sampleRate,
		logger:           log,
		silenceThreshold: 500,
		trailingSilence:  time.Second,
	}
}

func (m *Microphone) Probe() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing portaudio: %w", err)
	}
	defer portaudio.Terminate()

	device, err := portaudio.DefaultInputDevice()
	if err != nil {
		return fmt.Errorf("no default input device: %w", err)
	}
	if device.MaxInputChannels < 1 {
		return fmt.Errorf("default device %q has no input channels", device.Name)
	}
	return nil
}

func (m *Microphone) Record(ctx context.Context, maxDuration time.Duration) ([]byte, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}
	defer portaudio.Terminate()

	buffer := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(m.sampleRate), framesPerBuffer, buffer)
	if err != nil {
		return nil, fmt.Errorf("opening stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("starting stream: %w", err)
	}
	defer stream.Stop()

	maxSamples := int(maxDuration.Seconds() * float64(m.sampleRate))
	silenceLimit := int(m.trailingSilence.Seconds() * float64(m.sampleRate))

	samples := make([]int16, 0, maxSamples)
	heardSpeech := false
	silentSamples := 0

	m.logger.Info("Microphone", "Capture started", map[string]interface{}{
		"sample_rate": m.sampleRate,
		"window":      maxDuration.String(),
	})

	for len(samples) < maxSamples {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := stream.Read(); err != nil {
			return nil, fmt.Errorf("reading from stream: %w", err)
		}

		samples = append(samples, buffer...)

		loud := false
		for _, sample := range buffer {
			if sample > m.silenceThreshold || sample < -m.silenceThreshold {
				loud = true
				break
			}
		}
		if loud {
			heardSpeech = true
			silentSamples = 0
		} else {
			silentSamples += len(buffer)
		}

		// End the phrase once the speaker trails off; the hard window
		// above still bounds the whole capture.
		if heardSpeech && silentSamples > silenceLimit {
			break
		}
	}

	// The window is a hard limit, never exceeded.
	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}

	m.logger.Info("Microphone", "Capture finished", map[string]interface{}{
		"samples": len(samples),
	})

	return EncodeWAV(samples, m.sampleRate), nil
}
