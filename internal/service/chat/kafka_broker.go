package chat

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	myconfig "hexachats_server/internal/config"
	"hexachats_server/internal/dao/mysql/repository"
	myredis "hexachats_server/internal/dao/redis"
	"hexachats_server/pkg/constants"
)

// KafkaBroker routes events through a kafka topic so several instances
// can share the load. Each instance consumes the full topic and only
// delivers to the clients connected to it; chat messages are persisted
// once, by the publishing instance, before they reach the topic.
type KafkaBroker struct {
	Clients sync.Map
	Login   chan *UserConn
	Logout  chan *UserConn

	client *KafkaClient
	router *eventRouter
	done   chan struct{}

	// mu guards closed; websocket read goroutines may still publish
	// while Close runs.
	mu     sync.RWMutex
	closed bool
}

// NewKafkaBroker wires the broker over an initialized KafkaClient.
func NewKafkaBroker(client *KafkaClient, repos *repository.Repositories, cache myredis.AsyncCacheService) *KafkaBroker {
	b := &KafkaBroker{
		Login:  make(chan *UserConn, constants.CHANNEL_SIZE),
		Logout: make(chan *UserConn, constants.CHANNEL_SIZE),
		client: client,
		done:   make(chan struct{}),
	}
	b.router = newEventRouter(&b.Clients, repos, cache)
	return b
}

// Start consumes the chat topic in a goroutine and runs the client
// registration loop in the caller.
func (b *KafkaBroker) Start() {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error(fmt.Sprintf("kafka broker panic: %v", r))
		}
	}()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error(fmt.Sprintf("kafka consumer panic: %v", r))
			}
		}()
		for {
			kafkaMessage, err := b.client.Consumer.ReadMessage(context.Background())
			if err != nil {
				select {
				case <-b.done:
					return
				default:
				}
				zap.L().Error("kafka read failed", zap.Error(err))
				continue
			}
			b.router.handleEvent(kafkaMessage.Value)
		}
	}()
	go b.router.refreshPresence(b.done)

	for {
		select {
		case client, ok := <-b.Login:
			if !ok {
				return
			}
			if client == nil {
				continue
			}
			b.router.login(client)

		case client, ok := <-b.Logout:
			if !ok {
				return
			}
			if client == nil {
				continue
			}
			b.router.logout(client)
		}
	}
}

func (b *KafkaBroker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	close(b.Login)
	close(b.Logout)
}

// Publish persists chat messages locally, then writes the stamped
// envelope to the chat topic; the consumer side of every instance picks
// it up and only delivers.
func (b *KafkaBroker) Publish(ctx context.Context, msg []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBrokerClosed
	}
	key := []byte(strconv.Itoa(myconfig.GetConfig().KafkaConfig.Partition))
	return b.client.WriteMessage(ctx, key, b.router.stampAndStore(msg))
}

func (b *KafkaBroker) RegisterClient(client *UserConn) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	b.Login <- client
}

func (b *KafkaBroker) UnregisterClient(client *UserConn) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	b.Logout <- client
}

func (b *KafkaBroker) GetClient(userId string) *UserConn {
	value, ok := b.Clients.Load(userId)
	if !ok {
		return nil
	}
	return value.(*UserConn)
}
