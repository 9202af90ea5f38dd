package bootstrap

import "errors"

var (
	errConstrainedHosting = errors.New("constrained hosting mode, host audio disabled")
	errMissingCredential  = errors.New("OPENAI_API_KEY is not set")
)
