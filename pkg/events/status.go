package events

import "time"

// TopicPipelineStatus carries one message per pipeline state transition.
const TopicPipelineStatus = "pipeline.status"

// PipelineStatus is the payload the browser status region renders. Detail is
// a human-readable notice ("Listening... Speak now.", an error message, ...).
type PipelineStatus struct {
	SessionID  string    `json:"session_id"`
	State      string    `json:"state"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
