package capability

// Set is the immutable outcome of startup capability detection. The
// interaction surface offered to the browser is a pure function of it:
// voice controls exist only when SpeechInput is true, playback is attempted
// only when SpeechOutput is true, and so on.
type Set struct {
	SpeechInput       bool `json:"speech_input"`
	SpeechOutput      bool `json:"speech_output"`
	DocumentParsing   bool `json:"document_parsing"`
	CredentialPresent bool `json:"credential_present"`
}

// Missing lists the names of unavailable capabilities, for the startup
// warning and for status endpoints.
func (s Set) Missing() []string {
	var missing []string
	if !s.SpeechInput {
		missing = append(missing, "speech_input")
	}
	if !s.SpeechOutput {
		missing = append(missing, "speech_output")
	}
	if !s.DocumentParsing {
		missing = append(missing, "document_parsing")
	}
	if !s.CredentialPresent {
		missing = append(missing, "credential_present")
	}
	return missing
}

func (s Set) Complete() bool {
	return s.SpeechInput && s.SpeechOutput && s.DocumentParsing && s.CredentialPresent
}
