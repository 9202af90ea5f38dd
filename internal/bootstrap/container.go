package bootstrap

import (
	"log"
	"time"

	"interview-assistant-be/internal/capability"
	"interview-assistant-be/internal/config"
	"interview-assistant-be/internal/constant"
	"interview-assistant-be/internal/controller"
	"interview-assistant-be/internal/handler"
	"interview-assistant-be/internal/pipeline"
	"interview-assistant-be/internal/pkg/logger"
	"interview-assistant-be/internal/prompt"
	"interview-assistant-be/internal/service"
	"interview-assistant-be/internal/session"
	"interview-assistant-be/internal/websocket"
	"interview-assistant-be/pkg/audio"
	"interview-assistant-be/pkg/document"
	"interview-assistant-be/pkg/events"
	"interview-assistant-be/pkg/llm"
	"interview-assistant-be/pkg/llm/factory"
	"interview-assistant-be/pkg/speech/stt"
	"interview-assistant-be/pkg/speech/tts"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	InterviewController controller.IInterviewController

	// Background services (exposed for main.go to run)
	StatusConsumerService service.IStatusConsumerService

	// WebSockets
	StatusHandler *handler.StatusHandler
	WebSocketHub  *websocket.Hub

	// Detected once, immutable for the life of the process
	Capabilities capability.Set

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. External service adapters
	microphone := audio.NewMicrophone(cfg.Speech.SampleRate, sysLogger)
	transcriber := stt.NewWhisperClient(cfg.Keys.OpenAI, cfg.Speech.STTModel, cfg.Speech.STTLanguage)
	synthesizer := tts.NewOpenAIClient(cfg.Keys.OpenAI, cfg.Speech.TTSModel, cfg.Speech.TTSVoice)
	player := tts.NewPlayer()
	extractor := document.NewFileExtractor()

	// 3. Capability detection, once per process. A constrained ("cloud")
	// deployment has no audio device and no media handler; each probe
	// fails independently without aborting startup.
	cloudHosted := cfg.App.HostingMode == "cloud"
	caps := capability.Detect(capability.Probes{
		SpeechInput: func() error {
			if cloudHosted {
				return errConstrainedHosting
			}
			return microphone.Probe()
		},
		SpeechOutput: func() error {
			if cloudHosted {
				return errConstrainedHosting
			}
			return player.Probe()
		},
		DocumentParsing: func() error {
			return nil // extractor is compiled in, always usable
		},
		CredentialPresent: func() error {
			if cfg.Keys.OpenAI == "" && cfg.Ai.LLMProvider == "openai" {
				return errMissingCredential
			}
			return nil
		},
	}, sysLogger)

	// 4. LLM provider
	var llmProvider llm.LLMProvider
	if caps.CredentialPresent {
		provider, err := factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			cfg.Ai.OllamaBaseURL,
			cfg.Keys.OpenAI,
		)
		if err != nil {
			log.Panicf("Unable to initialize LLM provider: %v", err)
		}
		llmProvider = provider
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 5. Event bus (in-process)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	statusPublisher := events.NewStatusPublisher(pubSub)

	// 6. Domain components
	sessions := session.NewRepository()
	promptBuilder := prompt.NewBuilder(constant.SystemPromptInterviewer, cfg.Policy.RequireResume)

	orchestrator := pipeline.NewOrchestrator(pipeline.Options{
		Capabilities:  caps,
		Sessions:      sessions,
		PromptBuilder: promptBuilder,
		Recorder:      microphone,
		Transcriber:   transcriber,
		LLM:           llmProvider,
		Synthesizer:   synthesizer,
		Player:        player,
		Status:        statusPublisher,
		Logger:        sysLogger,
		CaptureWindow: time.Duration(cfg.Speech.CaptureWindowSeconds) * time.Second,
	})

	// 7. Services & controllers
	interviewService := service.NewInterviewService(caps, sessions, orchestrator, extractor, promptBuilder)

	hub := websocket.NewHub(sysLogger)
	statusConsumer := service.NewStatusConsumerService(pubSub, hub, sysLogger)

	return &Container{
		InterviewController:   controller.NewInterviewController(interviewService),
		StatusConsumerService: statusConsumer,
		StatusHandler:         handler.NewStatusHandler(sessions, hub, sysLogger),
		WebSocketHub:          hub,
		Capabilities:          caps,
		Logger:                sysLogger,
	}
}
