package service

import (
	"context"
	"unicode/utf8"

	"interview-assistant-be/internal/capability"
	"interview-assistant-be/internal/dto"
	"interview-assistant-be/internal/pipeline"
	"interview-assistant-be/internal/pkg/serverutils"
	"interview-assistant-be/internal/prompt"
	"interview-assistant-be/internal/session"
	"interview-assistant-be/pkg/document"
)

// IInterviewService defines the interview session surface behind the HTTP
// controllers.
type IInterviewService interface {
	Capabilities() capability.Set
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	ShowSession(ctx context.Context, sessionID string) (*dto.SessionSnapshotResponse, error)
	UploadResume(ctx context.Context, sessionID, filename string, data []byte) (*dto.UploadResumeResponse, error)
	Ask(ctx context.Context, sessionID string, req *dto.AskRequest) (*dto.AnswerResponse, error)
	Listen(ctx context.Context, sessionID string) (*dto.AnswerResponse, error)
}

type interviewService struct {
	caps         capability.Set
	sessions     *session.Repository
	orchestrator *pipeline.Orchestrator
	extractor    document.Extractor
	builder      *prompt.Builder
}

func NewInterviewService(
	caps capability.Set,
	sessions *session.Repository,
	orchestrator *pipeline.Orchestrator,
	extractor document.Extractor,
	builder *prompt.Builder,
) IInterviewService {
	return &interviewService{
		caps:         caps,
		sessions:     sessions,
		orchestrator: orchestrator,
		extractor:    extractor,
		builder:      builder,
	}
}

func (s *interviewService) Capabilities() capability.Set {
	return s.caps
}

func (s *interviewService) CreateSession(_ context.Context) (*dto.CreateSessionResponse, error) {
	sess := s.sessions.Create()
	return &dto.CreateSessionResponse{
		Id:             sess.ID,
		ResumeRequired: s.builder.RequiresResume(),
	}, nil
}

func (s *interviewService) ShowSession(_ context.Context, sessionID string) (*dto.SessionSnapshotResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, serverutils.NewNotFound("session")
	}
	return &dto.SessionSnapshotResponse{
		Id:           sess.ID,
		LastQuestion: sess.LastQuestion,
		LastAnswer:   sess.LastAnswer,
		HasResume:    sess.HasResume(),
		UpdatedAt:    sess.UpdatedAt,
	}, nil
}

func (s *interviewService) UploadResume(ctx context.Context, sessionID, filename string, data []byte) (*dto.UploadResumeResponse, error) {
	if !s.caps.DocumentParsing {
		return nil, serverutils.NewCapabilityUnavailable("document parsing")
	}

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, serverutils.NewNotFound("session")
	}

	text, err := s.extractor.Extract(ctx, filename, data)
	if err != nil {
		return nil, &serverutils.ApiError{
			Code:    serverutils.CodeInvalidRequest,
			Status:  422,
			Message: "Could not read the uploaded resume: " + err.Error(),
			Err:     err,
		}
	}

	sess.ResumeContext = text
	s.sessions.Save(sess)

	preview := text
	if len(preview) > 200 {
		cut := 200
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut]
	}
	return &dto.UploadResumeResponse{
		Characters: len(text),
		Preview:    preview,
	}, nil
}

func (s *interviewService) Ask(ctx context.Context, sessionID string, req *dto.AskRequest) (*dto.AnswerResponse, error) {
	if !s.caps.CredentialPresent {
		return nil, serverutils.NewCapabilityUnavailable("completion credential")
	}

	result, err := s.orchestrator.AskTyped(ctx, sessionID, req.Question)
	if err != nil {
		return nil, err
	}
	return answerResponse(result), nil
}

func (s *interviewService) Listen(ctx context.Context, sessionID string) (*dto.AnswerResponse, error) {
	if !s.caps.CredentialPresent {
		return nil, serverutils.NewCapabilityUnavailable("completion credential")
	}

	result, err := s.orchestrator.AskVoice(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return answerResponse(result), nil
}

func answerResponse(result *pipeline.Result) *dto.AnswerResponse {
	return &dto.AnswerResponse{
		Question: result.Question,
		Answer:   result.Answer,
		Source:   result.Source,
		Spoken:   result.Spoken,
		Warning:  result.Warning,
	}
}
