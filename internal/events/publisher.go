package events

import (
	"context"
	"encoding/json"
	"strconv"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, event EmployeeEvent) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewKafkaPublisher membuat publisher sinkron ke topik lifecycle.
// Publish dipanggil di dalam request setelah commit; tidak ada worker background.
func NewKafkaPublisher(broker string, logger ...*zap.Logger) Publisher {
	l := zap.L().Named("kafka.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.publisher")
	}

	return &kafkaPublisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(broker),
			Topic:        EmployeeLifecycleTopic,
			Balancer:     &kafkago.LeastBytes{},
			RequiredAcks: kafkago.RequireOne,
		},
		logger: l,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event EmployeeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.EmployeeID), 10)),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	p.logger.Debug("employee event published",
		zap.String("event_type", event.EventType),
		zap.Uint("employee_id", event.EmployeeID),
	)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
