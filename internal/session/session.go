package session

import "time"

// Session is the per-visit conversational state. ResumeContext persists
// across questions within the visit; LastQuestion/LastAnswer are overwritten
// per request. Nothing survives a server restart.
type Session struct {
	ID            string    `json:"id"`
	ResumeContext string    `json:"resume_context,omitempty"`
	LastQuestion  string    `json:"last_question,omitempty"`
	LastAnswer    string    `json:"last_answer,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *Session) HasResume() bool {
	return s.ResumeContext != ""
}
