// Package chat implements the realtime layer: websocket connections,
// event routing and the channel/kafka broker pair.
package chat

import (
	"context"
	"errors"
)

// ErrBrokerClosed is returned by Publish once the broker has shut down.
var ErrBrokerClosed = errors.New("chat broker closed")

// MessageBroker routes websocket events. Two implementations exist:
// ChannelBroker for a single node and KafkaBroker for running several
// instances behind a load balancer.
type MessageBroker interface {
	// Publish hands a raw event envelope to the routing loop.
	Publish(ctx context.Context, msg []byte) error
	RegisterClient(client *UserConn)
	UnregisterClient(client *UserConn)
	GetClient(userId string) *UserConn
	// Start runs the routing loop until the broker is closed.
	Start()
	Close()
}

// GlobalBroker is set by InitChatServer and used by the websocket
// gateway.
var GlobalBroker MessageBroker
