package prompt

import (
	"strings"

	"interview-assistant-be/internal/constant"
	"interview-assistant-be/internal/pkg/serverutils"
	"interview-assistant-be/pkg/llm"
)

// Builder assembles the message list for a completion request. The fixed
// instruction always comes first; resume context, when present, is embedded
// between the instruction and the question.
type Builder struct {
	instruction   string
	requireResume bool
}

func NewBuilder(instruction string, requireResume bool) *Builder {
	return &Builder{
		instruction:   instruction,
		requireResume: requireResume,
	}
}

// Build returns the ordered messages for the completion service. When the
// resume-required policy is on and no resume context exists, it fails with
// MissingContext instead of emitting a context-free prompt.
func (b *Builder) Build(question, resumeContext string) ([]llm.Message, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, serverutils.NewInvalidRequest("question must not be empty")
	}

	resumeContext = strings.TrimSpace(resumeContext)
	if b.requireResume && resumeContext == "" {
		return nil, serverutils.NewMissingContext()
	}

	system := b.instruction
	if resumeContext != "" {
		system = system + "\n\n" + constant.ResumeContextHeader + "\n" + resumeContext
	}

	return []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: system},
		{Role: constant.ChatMessageRoleUser, Content: question},
	}, nil
}

// RequiresResume reports the active resume policy, so the UI can warn before
// the user even asks.
func (b *Builder) RequiresResume() bool {
	return b.requireResume
}
