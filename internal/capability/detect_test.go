package capability_test

import (
	"errors"
	"testing"

	"interview-assistant-be/internal/capability"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	warns []string
	infos []string
}

func (l *recordingLogger) Debug(_, _ string, _ map[string]interface{}) {}
func (l *recordingLogger) Info(_, message string, _ map[string]interface{}) {
	l.infos = append(l.infos, message)
}
func (l *recordingLogger) Warn(_, message string, _ map[string]interface{}) {
	l.warns = append(l.warns, message)
}
func (l *recordingLogger) Error(_, _ string, _ map[string]interface{}) {}
func (l *recordingLogger) Sync() error                                 { return nil }

func ok() error   { return nil }
func fail() error { return errors.New("probe failed") }

func TestDetectAllAvailable(t *testing.T) {
	log := &recordingLogger{}

	set := capability.Detect(capability.Probes{
		SpeechInput:       ok,
		SpeechOutput:      ok,
		DocumentParsing:   ok,
		CredentialPresent: ok,
	}, log)

	assert.True(t, set.Complete())
	assert.Empty(t, set.Missing())
	assert.Empty(t, log.warns)
}

func TestDetectFailuresAreIsolated(t *testing.T) {
	log := &recordingLogger{}

	set := capability.Detect(capability.Probes{
		SpeechInput:       fail,
		SpeechOutput:      ok,
		DocumentParsing:   ok,
		CredentialPresent: fail,
	}, log)

	assert.False(t, set.SpeechInput)
	assert.True(t, set.SpeechOutput)
	assert.True(t, set.DocumentParsing)
	assert.False(t, set.CredentialPresent)
	assert.ElementsMatch(t, []string{"speech_input", "credential_present"}, set.Missing())
}

func TestDetectEmitsSingleWarningNamingMissing(t *testing.T) {
	log := &recordingLogger{}

	capability.Detect(capability.Probes{
		SpeechInput:       fail,
		SpeechOutput:      fail,
		DocumentParsing:   ok,
		CredentialPresent: ok,
	}, log)

	assert.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "speech_input")
	assert.Contains(t, log.warns[0], "speech_output")
	assert.NotContains(t, log.warns[0], "document_parsing")
}

func TestDetectNilProbeCountsAsMissing(t *testing.T) {
	log := &recordingLogger{}

	set := capability.Detect(capability.Probes{
		SpeechOutput:      ok,
		DocumentParsing:   ok,
		CredentialPresent: ok,
	}, log)

	assert.False(t, set.SpeechInput)
	assert.Len(t, log.warns, 1)
}
