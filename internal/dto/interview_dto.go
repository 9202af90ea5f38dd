package dto

import "time"

type CreateSessionResponse struct {
	Id             string `json:"id"`
	ResumeRequired bool   `json:"resume_required"`
}

type SessionSnapshotResponse struct {
	Id           string    `json:"id"`
	LastQuestion string    `json:"last_question,omitempty"`
	LastAnswer   string    `json:"last_answer,omitempty"`
	HasResume    bool      `json:"has_resume"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AskRequest struct {
	Question string `json:"question" validate:"required,min=1,max=4000"`
}

type AnswerResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Source   string `json:"source"` // "typed" | "voice"
	Spoken   bool   `json:"spoken"`
	Warning  string `json:"warning,omitempty"`
}

type UploadResumeResponse struct {
	Characters int    `json:"characters"`
	Preview    string `json:"preview"`
}
