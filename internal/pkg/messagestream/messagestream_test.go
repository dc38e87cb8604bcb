package messagestream_test

import (
	"context"
	"testing"
	"time"

	"guide-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishJSON(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	msgs, err := pubSub.Subscribe(context.Background(), messagestream.TopicBookingCreated)
	require.NoError(t, err)

	err = messagestream.PublishJSON(context.Background(), pubSub, messagestream.TopicBookingCreated, map[string]string{"booking_id": "b-1"})
	require.NoError(t, err)

	select {
	case msg := <-msgs:
		var got map[string]string
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, "b-1", got["booking_id"])
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

func TestRouterForwardsFailedMessagesToPoisonQueue(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	poisoned, err := pubSub.Subscribe(context.Background(), messagestream.TopicPoisoned)
	require.NoError(t, err)

	router, err := messagestream.NewRouter(pubSub, messagestream.TopicPoisoned, "payout_result_handler", messagestream.TopicPayoutResult, pubSub,
		func(msg *message.Message) error {
			return assert.AnError
		})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = router.Run(ctx) }()
	<-router.Running()

	require.NoError(t, pubSub.Publish(messagestream.TopicPayoutResult, message.NewMessage(watermill.NewUUID(), []byte(`{}`))))

	select {
	case msg := <-poisoned:
		assert.Equal(t, messagestream.TopicPayoutResult, msg.Metadata.Get(middleware.PoisonedTopicKey))
		msg.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("message not poisoned")
	}
}
