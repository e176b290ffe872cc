package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"

	"inn/config"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Producer publishes domain events. Publishing is best-effort: callers fire
// it from detached goroutines and only log failures.
type Producer interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
}

type producerImpl struct {
	config    *config.Config
	transport *kafkaGo.Transport
	address   net.Addr
}

type noopProducer struct{}

func (noopProducer) SendMessages(context.Context, string, ...Message) error {
	return nil
}

func New(cfg *config.Config) Producer {
	if !cfg.External.Kafka.Enable {
		log.Info().Msg("Kafka disabled, events will not be published")

		return noopProducer{}
	}

	var mechanism sasl.Mechanism
	if cfg.External.Kafka.Username != "" {
		mechanism = plain.Mechanism{
			Username: cfg.External.Kafka.Username,
			Password: cfg.External.Kafka.Password,
		}
	}

	transport := &kafkaGo.Transport{
		SASL: mechanism,
	}

	log.Info().Strs("brokers", cfg.External.Kafka.Brokers).Msg("Kafka producer initialized")

	return &producerImpl{
		config:    cfg,
		transport: transport,
		address:   kafkaGo.TCP(cfg.External.Kafka.Brokers...),
	}
}

func (k *producerImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	if topic == "" {
		topic = k.config.External.Kafka.Topic
	}

	writer := &kafkaGo.Writer{
		Addr:                   k.address,
		Topic:                  topic,
		Transport:              k.transport,
		AllowAutoTopicCreation: true,
		Async:                  true,
	}
	defer writer.Close()

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	err = writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	return nil
}
