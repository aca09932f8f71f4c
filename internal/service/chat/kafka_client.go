package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	myconfig "hexachats_server/internal/config"
)

// KafkaClient wraps the kafka writer/reader pair for the chat topic.
// Pure plumbing, no routing logic.
type KafkaClient struct {
	Producer *kafka.Writer
	Consumer *kafka.Reader
}

func NewKafkaClient() *KafkaClient {
	return &KafkaClient{}
}

// Init builds the producer and consumer from config. Must run before
// the Kafka broker starts.
func (k *KafkaClient) Init() {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	k.Producer = &kafka.Writer{
		Addr:                   kafka.TCP(kafkaConfig.HostPort),
		Topic:                  kafkaConfig.ChatTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           kafkaConfig.Timeout * time.Second,
		RequiredAcks:           kafka.RequireNone,
		AllowAutoTopicCreation: false,
	}
	// One consumer group per instance: every instance reads the full
	// topic, and each delivers only to its own connected clients. A
	// shared group would split the partitions and strand recipients
	// connected to the other instances.
	k.Consumer = kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{kafkaConfig.HostPort},
		Topic:          kafkaConfig.ChatTopic,
		CommitInterval: kafkaConfig.Timeout * time.Second,
		GroupID:        "hexachats-" + uuid.NewString(),
		StartOffset:    kafka.LastOffset,
	})
}

func (k *KafkaClient) Close() {
	if k.Producer != nil {
		if err := k.Producer.Close(); err != nil {
			zap.L().Error(err.Error())
		}
	}
	if k.Consumer != nil {
		if err := k.Consumer.Close(); err != nil {
			zap.L().Error(err.Error())
		}
	}
}

// WriteMessage publishes one envelope to the chat topic.
func (k *KafkaClient) WriteMessage(ctx context.Context, key, value []byte) error {
	return k.Producer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}
