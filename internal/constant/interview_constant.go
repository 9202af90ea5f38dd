package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// SystemPromptInterviewer is always the first message of every
	// completion request.
	SystemPromptInterviewer = `You are an experienced senior software developer attending a technical interview.
Answer confidently, clearly, and naturally - avoid robotic tone and sound human.
Keep answers concise (under 120 words) unless explanation is needed.`

	// ResumeContextHeader introduces the uploaded resume text inside the
	// system message, between the instruction and the question.
	ResumeContextHeader = "Candidate resume (ground your answers in it):"
)

// Status messages pushed to the UI status region while a request moves
// through the pipeline.
const (
	StatusListening    = "Listening... Speak now."
	StatusTranscribing = "Converting speech to text..."
	StatusComposing    = "Preparing your question..."
	StatusGenerating   = "Generating answer..."
	StatusSpeaking     = "Speaking answer aloud..."
	StatusDone         = "Answer ready."
)
