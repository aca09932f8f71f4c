package chat

import (
	"context"
	"sync"

	"hexachats_server/internal/dao/mysql/repository"
	myredis "hexachats_server/internal/dao/redis"
	"hexachats_server/pkg/constants"
)

// ChannelBroker routes events through an in-process channel. Suitable
// for a single instance; multi-instance deployments use KafkaBroker.
type ChannelBroker struct {
	// Clients maps user uuid to *UserConn. sync.Map, no manual locking.
	Clients  sync.Map
	Transmit chan []byte
	Login    chan *UserConn
	Logout   chan *UserConn

	router *eventRouter
	done   chan struct{}

	// mu guards closed; websocket read goroutines may still publish
	// while Close runs.
	mu     sync.RWMutex
	closed bool
}

// NewChannelBroker wires the broker with its repositories and cache.
func NewChannelBroker(repos *repository.Repositories, cache myredis.AsyncCacheService) *ChannelBroker {
	b := &ChannelBroker{
		Transmit: make(chan []byte, constants.CHANNEL_SIZE),
		Login:    make(chan *UserConn, constants.CHANNEL_SIZE),
		Logout:   make(chan *UserConn, constants.CHANNEL_SIZE),
		done:     make(chan struct{}),
	}
	b.router = newEventRouter(&b.Clients, repos, cache)
	return b
}

// Start runs the event loop: client registration on Login/Logout and
// event routing on Transmit. Returns when any channel is closed.
func (b *ChannelBroker) Start() {
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

		case data, ok := <-b.Transmit:
			if !ok {
				return
			}
			b.router.handleEvent(data)
		}
	}
}

func (b *ChannelBroker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	close(b.Login)
	close(b.Logout)
	close(b.Transmit)
}

func (b *ChannelBroker) Publish(ctx context.Context, msg []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBrokerClosed
	}
	b.Transmit <- msg
	return nil
}

func (b *ChannelBroker) RegisterClient(client *UserConn) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	b.Login <- client
}

func (b *ChannelBroker) UnregisterClient(client *UserConn) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	b.Logout <- client
}

func (b *ChannelBroker) GetClient(userId string) *UserConn {
	value, ok := b.Clients.Load(userId)
	if !ok {
		return nil
	}
	return value.(*UserConn)
}
