package messagestream

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

const (
	TopicPoisoned = "poisoned_queue"

	TopicBookingCreated   = "booking.created"
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCompleted = "booking.completed"
	TopicBookingCancelled = "booking.cancelled"
	TopicDisputeOpened    = "dispute.opened"
	TopicDisputeResolved  = "dispute.resolved"
	TopicEarningCreated   = "referral_earning.created"
	TopicPayoutRequested  = "referral_payout_requested"
	TopicPayoutResult     = "referral_payout_result"
)

// NewRouter wires a single consumer: messages that still fail after retries
// are forwarded to poisonTopic.
func NewRouter(pub message.Publisher, poisonTopic string, handlerName string, topic string, sub message.Subscriber, handlerFunc message.NoPublishHandlerFunc) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(pub, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     time.Second,
			Multiplier:      2,
			Logger:          logger,
		}.Middleware,
		middleware.CorrelationID,
	)

	router.AddNoPublisherHandler(handlerName, topic, sub, handlerFunc)

	return router, nil
}
