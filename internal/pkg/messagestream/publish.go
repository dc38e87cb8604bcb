package messagestream

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/goccy/go-json"
)

// PublishJSON marshals payload and publishes it on topic, carrying ctx in the message.
func PublishJSON(ctx context.Context, pub message.Publisher, topic string, payload interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), b)
	msg.SetContext(ctx)
	middleware.SetCorrelationID(watermill.NewShortUUID(), msg)

	return pub.Publish(topic, msg)
}
