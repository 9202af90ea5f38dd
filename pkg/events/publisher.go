package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// StatusPublisher pushes pipeline status events onto the in-process pub/sub.
type StatusPublisher struct {
	pubSub *gochannel.GoChannel
}

func NewStatusPublisher(pubSub *gochannel.GoChannel) *StatusPublisher {
	return &StatusPublisher{pubSub: pubSub}
}

func (p *StatusPublisher) Publish(sessionID, state, detail string) error {
	payload, err := json.Marshal(PipelineStatus{
		SessionID:  sessionID,
		State:      state,
		Detail:     detail,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return p.pubSub.Publish(TopicPipelineStatus, msg)
}
