package messagestream

import (
	"fmt"

	"guide-booking-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
)

type Amqp struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) *Amqp {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)

	amqpCfg := amqp.NewDurableQueueConfig(uri)
	amqpCfg.Queue.GenerateName = amqp.GenerateQueueNameTopicNameWithSuffix(cfg.ExchangeName)

	return &Amqp{
		cfg:    amqpCfg,
		logger: watermill.NewStdLogger(false, false),
	}
}

func (a *Amqp) NewSubscriber() (message.Subscriber, error) {
	return amqp.NewSubscriber(a.cfg, a.logger)
}

func (a *Amqp) NewPublisher() (message.Publisher, error) {
	return amqp.NewPublisher(a.cfg, a.logger)
}

func (a *Amqp) Logger() watermill.LoggerAdapter {
	return a.logger
}
