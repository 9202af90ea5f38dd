package serverutils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode identifies a failure class surfaced to the user. Failures never
// crash the session: every adapter call converts its error into one of these
// at the point of the call.
type ErrorCode string

const (
	CodeCapabilityUnavailable ErrorCode = "CAPABILITY_UNAVAILABLE"
	CodeTranscriptionFailed   ErrorCode = "TRANSCRIPTION_FAILED"
	CodeMissingContext        ErrorCode = "MISSING_CONTEXT"
	CodeUpstreamError         ErrorCode = "UPSTREAM_ERROR"
	CodePlaybackUnavailable   ErrorCode = "PLAYBACK_UNAVAILABLE"
	CodePipelineBusy          ErrorCode = "PIPELINE_BUSY"
	CodeNotFound              ErrorCode = "NOT_FOUND"
	CodeInvalidRequest        ErrorCode = "INVALID_REQUEST"
)

// ApiError is the error type services return and the error middleware maps
// to an HTTP response.
type ApiError struct {
	Code    ErrorCode
	Status  int
	Message string
	Err     error
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func NewCapabilityUnavailable(capabilityName string) *ApiError {
	return &ApiError{
		Code:    CodeCapabilityUnavailable,
		Status:  fiber.StatusServiceUnavailable,
		Message: fmt.Sprintf("%s is not available in this deployment", capabilityName),
	}
}

func NewTranscriptionFailed(err error) *ApiError {
	return &ApiError{
		Code:    CodeTranscriptionFailed,
		Status:  fiber.StatusUnprocessableEntity,
		Message: "Could not understand speech. Try again.",
		Err:     err,
	}
}

func NewMissingContext() *ApiError {
	return &ApiError{
		Code:    CodeMissingContext,
		Status:  fiber.StatusUnprocessableEntity,
		Message: "Upload a resume before generating an answer.",
	}
}

// NewUpstreamError carries the upstream failure verbatim; the UI shows it
// as-is and offers no retry.
func NewUpstreamError(stage string, err error) *ApiError {
	return &ApiError{
		Code:    CodeUpstreamError,
		Status:  fiber.StatusBadGateway,
		Message: fmt.Sprintf("%s service error: %v", stage, err),
		Err:     err,
	}
}

func NewPlaybackUnavailable(err error) *ApiError {
	return &ApiError{
		Code:    CodePlaybackUnavailable,
		Status:  fiber.StatusOK, // non-fatal, answer already rendered
		Message: "Answer could not be spoken aloud.",
		Err:     err,
	}
}

func NewPipelineBusy() *ApiError {
	return &ApiError{
		Code:    CodePipelineBusy,
		Status:  fiber.StatusConflict,
		Message: "A request is already in flight for this session.",
	}
}

func NewNotFound(what string) *ApiError {
	return &ApiError{
		Code:    CodeNotFound,
		Status:  fiber.StatusNotFound,
		Message: fmt.Sprintf("%s not found", what),
	}
}

func NewInvalidRequest(message string) *ApiError {
	return &ApiError{
		Code:    CodeInvalidRequest,
		Status:  fiber.StatusBadRequest,
		Message: message,
	}
}

// AsApiError unwraps err to an *ApiError if one is in the chain.
func AsApiError(err error) (*ApiError, bool) {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
