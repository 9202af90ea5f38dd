package pipeline

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"interview-assistant-be/internal/capability"
	"interview-assistant-be/internal/constant"
	"interview-assistant-be/internal/pkg/logger"
	"interview-assistant-be/internal/pkg/serverutils"
	"interview-assistant-be/internal/prompt"
	"interview-assistant-be/internal/session"
	"interview-assistant-be/pkg/audio"
	"interview-assistant-be/pkg/llm"
	"interview-assistant-be/pkg/speech/stt"
)

// State names one stop of the request pipeline. Voice requests walk
// Idle → Capturing → Transcribing → Composing → Requesting → Rendering →
// Speaking → Idle; typed requests enter at Composing.
type State string

const (
	StateIdle         State = "idle"
	StateCapturing    State = "capturing"
	StateTranscribing State = "transcribing"
	StateComposing    State = "composing"
	StateRequesting   State = "requesting"
	StateRendering    State = "rendering"
	StateSpeaking     State = "speaking"
)

const (
	SourceTyped = "typed"
	SourceVoice = "voice"
)

// StatusPublisher mirrors each transition to the UI status region.
type StatusPublisher interface {
	Publish(sessionID, state, detail string) error
}

// AudioOpener hands a synthesized audio file to the host media handler.
type AudioOpener interface {
	Open(path string) error
}

// Result is what one completed pipeline run renders.
type Result struct {
	Question string
	Answer   string
	Source   string // "typed" | "voice"
	Spoken   bool
	Warning  string // non-fatal playback notice, answer already rendered
}

// Options wires the orchestrator's collaborators. All are required except
// Recorder/Transcriber (voice-only) and Synthesizer/Player (speech-output
// only), which may be nil when the matching capability is off.
type Options struct {
	Capabilities  capability.Set
	Sessions      *session.Repository
	PromptBuilder *prompt.Builder
	Recorder      audio.Recorder
	Transcriber   stt.Transcriber
	LLM           llm.LLMProvider
	Synthesizer   synthesizer
	Player        AudioOpener
	Status        StatusPublisher
	Logger        logger.ILogger
	CaptureWindow time.Duration
}

type synthesizer interface {
	SynthesizeToFile(ctx context.Context, text, path string) error
}

// Orchestrator runs the capture → transcribe → compose → request → render →
// speak pipeline, one request per session at a time.
type Orchestrator struct {
	caps          capability.Set
	sessions      *session.Repository
	builder       *prompt.Builder
	recorder      audio.Recorder
	transcriber   stt.Transcriber
	llmProvider   llm.LLMProvider
	synth         synthesizer
	player        AudioOpener
	status        StatusPublisher
	logger        logger.ILogger
	captureWindow time.Duration

	inflight sync.Map // session ID -> struct{}
}

func NewOrchestrator(opts Options) *Orchestrator {
	window := opts.CaptureWindow
	if window <= 0 {
		window = 15 * time.Second
	}
	return &Orchestrator{
		caps:          opts.Capabilities,
		sessions:      opts.Sessions,
		builder:       opts.PromptBuilder,
		recorder:      opts.Recorder,
		transcriber:   opts.Transcriber,
		llmProvider:   opts.LLM,
		synth:         opts.Synthesizer,
		player:        opts.Player,
		status:        opts.Status,
		logger:        opts.Logger,
		captureWindow: window,
	}
}

// AskTyped runs the typed-question path: Idle → Composing → ... → Idle.
func (o *Orchestrator) AskTyped(ctx context.Context, sessionID, question string) (*Result, error) {
	sess, ok := o.sessions.Get(sessionID)
	if !ok {
		return nil, serverutils.NewNotFound("session")
	}

	if !o.acquire(sessionID) {
		return nil, serverutils.NewPipelineBusy()
	}
	defer o.release(sessionID)

	return o.answer(ctx, sess, question, SourceTyped)
}

// AskVoice runs the voice path: capture a bounded window of audio,
// transcribe it, then continue through the shared pipeline tail.
func (o *Orchestrator) AskVoice(ctx context.Context, sessionID string) (*Result, error) {
	if !o.caps.SpeechInput {
		return nil, serverutils.NewCapabilityUnavailable("speech input")
	}

	sess, ok := o.sessions.Get(sessionID)
	if !ok {
		return nil, serverutils.NewNotFound("session")
	}

	if !o.acquire(sessionID) {
		return nil, serverutils.NewPipelineBusy()
	}
	defer o.release(sessionID)

	o.setState(sessionID, StateCapturing, constant.StatusListening)
	wav, err := o.recorder.Record(ctx, o.captureWindow)
	if err != nil {
		apiErr := serverutils.NewTranscriptionFailed(err)
		o.setState(sessionID, StateIdle, apiErr.Message)
		return nil, apiErr
	}

	o.setState(sessionID, StateTranscribing, constant.StatusTranscribing)
	text, err := o.transcriber.Transcribe(ctx, wav)
	if err != nil {
		apiErr := serverutils.NewTranscriptionFailed(err)
		o.setState(sessionID, StateIdle, apiErr.Message)
		return nil, apiErr
	}
	if strings.TrimSpace(text) == "" {
		apiErr := serverutils.NewTranscriptionFailed(nil)
		o.setState(sessionID, StateIdle, apiErr.Message)
		return nil, apiErr
	}

	return o.answer(ctx, sess, text, SourceVoice)
}

// answer is the shared pipeline tail. The session is only written on
// success: any failure before Rendering leaves lastQuestion/lastAnswer
// exactly as they were.
func (o *Orchestrator) answer(ctx context.Context, sess *session.Session, question, source string) (*Result, error) {
	o.setState(sess.ID, StateComposing, constant.StatusComposing)
	messages, err := o.builder.Build(question, sess.ResumeContext)
	if err != nil {
		detail := "Could not prepare the question."
		if apiErr, ok := serverutils.AsApiError(err); ok {
			detail = apiErr.Message
		}
		o.setState(sess.ID, StateIdle, detail)
		return nil, err
	}

	o.setState(sess.ID, StateRequesting, constant.StatusGenerating)
	answer, err := o.llmProvider.Chat(ctx, messages)
	if err != nil {
		apiErr := serverutils.NewUpstreamError("completion", err)
		o.setState(sess.ID, StateIdle, apiErr.Message)
		return nil, apiErr
	}
	answer = strings.TrimSpace(answer)

	o.setState(sess.ID, StateRendering, "")
	// Re-read before writing: a resume uploaded while the completion was in
	// flight must survive this Save.
	current, ok := o.sessions.Get(sess.ID)
	if !ok {
		current = sess
	}
	current.LastQuestion = question
	current.LastAnswer = answer
	o.sessions.Save(current)

	result := &Result{
		Question: question,
		Answer:   answer,
		Source:   source,
	}

	if o.caps.SpeechOutput {
		result.Spoken, result.Warning = o.speak(ctx, sess.ID, answer)
	}

	o.setState(sess.ID, StateIdle, constant.StatusDone)
	return result, nil
}

// speak synthesizes the answer to a temp file and spawns the host media
// handler. Playback is not awaited; any failure here downgrades to a
// warning and never touches the rendered answer.
func (o *Orchestrator) speak(ctx context.Context, sessionID, text string) (spoken bool, warning string) {
	o.setState(sessionID, StateSpeaking, constant.StatusSpeaking)

	file, err := os.CreateTemp("", "answer-*.mp3")
	if err != nil {
		return false, o.playbackWarning(sessionID, err)
	}
	path := file.Name()
	file.Close()

	if err := o.synth.SynthesizeToFile(ctx, text, path); err != nil {
		os.Remove(path)
		return false, o.playbackWarning(sessionID, err)
	}
	if err := o.player.Open(path); err != nil {
		os.Remove(path)
		return false, o.playbackWarning(sessionID, err)
	}
	// The file stays for the spawned media handler; playback is not awaited.
	return true, ""
}

func (o *Orchestrator) playbackWarning(sessionID string, err error) string {
	apiErr := serverutils.NewPlaybackUnavailable(err)
	o.logger.Warn("Pipeline", "Speech playback failed", map[string]interface{}{
		"session_id": sessionID,
		"error":      err.Error(),
	})
	return apiErr.Message
}

func (o *Orchestrator) acquire(sessionID string) bool {
	_, loaded := o.inflight.LoadOrStore(sessionID, struct{}{})
	return !loaded
}

func (o *Orchestrator) release(sessionID string) {
	o.inflight.Delete(sessionID)
}

func (o *Orchestrator) setState(sessionID string, state State, detail string) {
	if o.status == nil {
		return
	}
	if err := o.status.Publish(sessionID, string(state), detail); err != nil {
		o.logger.Warn("Pipeline", "Status publish failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}
