package capability

import (
	"strings"

	"interview-assistant-be/internal/pkg/logger"
)

// Probe attempts to acquire one optional capability. A nil error means the
// capability is usable; any error means it is absent.
type Probe func() error

// Probes holds one probe per capability. They are injected by bootstrap so
// the detector itself stays free of audio, filesystem, and credential
// concerns.
type Probes struct {
	SpeechInput       Probe
	SpeechOutput      Probe
	DocumentParsing   Probe
	CredentialPresent Probe
}

// Detect runs every probe exactly once and returns the resulting Set.
// Probe failures are isolated: one missing capability never suppresses the
// others, and none aborts startup. A single warning names everything that
// is unavailable.
func Detect(probes Probes, log logger.ILogger) Set {
	set := Set{}
	failures := map[string]string{}

	run := func(name string, probe Probe) bool {
		if probe == nil {
			failures[name] = "no probe configured"
			return false
		}
		if err := probe(); err != nil {
			failures[name] = err.Error()
			return false
		}
		return true
	}

	set.SpeechInput = run("speech_input", probes.SpeechInput)
	set.SpeechOutput = run("speech_output", probes.SpeechOutput)
	set.DocumentParsing = run("document_parsing", probes.DocumentParsing)
	set.CredentialPresent = run("credential_present", probes.CredentialPresent)

	if len(failures) > 0 {
		details := map[string]interface{}{}
		for name, reason := range failures {
			details[name] = reason
		}
		log.Warn("Capability", "Running degraded, unavailable: "+strings.Join(set.Missing(), ", "), details)
	} else {
		log.Info("Capability", "All capabilities available", nil)
	}

	return set
}
