package service

import (
	"context"
	"encoding/json"

	"interview-assistant-be/internal/pkg/logger"
	"interview-assistant-be/internal/websocket"
	"interview-assistant-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IStatusConsumerService drains pipeline status events from the in-process
// pub/sub and forwards them to the websocket hub.
type IStatusConsumerService interface {
	Consume(ctx context.Context) error
}

type statusConsumerService struct {
	pubSub *gochannel.GoChannel
	hub    *websocket.Hub
	logger logger.ILogger
}

func NewStatusConsumerService(pubSub *gochannel.GoChannel, hub *websocket.Hub, log logger.ILogger) IStatusConsumerService {
	return &statusConsumerService{
		pubSub: pubSub,
		hub:    hub,
		logger: log,
	}
}

func (cs *statusConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicPipelineStatus)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *statusConsumerService) processMessage(msg *message.Message) {
	var status events.PipelineStatus
	if err := json.Unmarshal(msg.Payload, &status); err != nil {
		cs.logger.Error("StatusConsumer", "Failed to unmarshal status event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are dropped, never redelivered
		return
	}

	cs.hub.SendStatus(status)
	msg.Ack()
}
