package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicProgress carries generation/improvement progress for all documents;
// consumers filter on the document_id payload field.
const TopicProgress = "docgen.progress"

// Bus is the in-process event bus backed by a watermill gochannel pub/sub.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		// BlockPublishUntilSubscriberAck keeps delivery in publish order:
		// progress consumers rely on started/generated/completed arriving
		// in the sequence the run emitted them.
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{
				OutputChannelBuffer:            64,
				BlockPublishUntilSubscriberAck: true,
			},
			watermill.NewStdLogger(false, false),
		),
	}
}

// Publish sends an event to a topic. With subscribers present it blocks
// until each acks, so subscribers must ack promptly; with none it returns
// immediately.
func (b *Bus) Publish(topic string, event Event) error {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("event_type", event.EventType())

	if err := b.pubSub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish event to topic %s: %w", topic, err)
	}
	return nil
}

// Subscribe returns a channel of messages for a topic. The subscription
// ends when ctx is cancelled.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}
