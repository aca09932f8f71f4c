package chat

import (
	"hexachats_server/internal/dao/mysql/repository"
	myredis "hexachats_server/internal/dao/redis"
	"hexachats_server/internal/dto/respond"
)

// ChatServer aggregates the realtime components and picks the broker
// implementation by mode.
type ChatServer struct {
	Broker      MessageBroker
	KafkaClient *KafkaClient

	mode string
}

// ChatServerConfig selects the broker: "kafka" for multi-instance,
// anything else runs the in-process channel broker.
type ChatServerConfig struct {
	Mode         string
	Repos        *repository.Repositories
	CacheService myredis.AsyncCacheService
}

func NewChatServer(cfg ChatServerConfig) *ChatServer {
	cs := &ChatServer{mode: cfg.Mode}
	if cfg.Mode == "kafka" {
		cs.KafkaClient = NewKafkaClient()
		cs.Broker = NewKafkaBroker(cs.KafkaClient, cfg.Repos, cfg.CacheService)
	} else {
		cs.Broker = NewChannelBroker(cfg.Repos, cfg.CacheService)
	}
	return cs
}

// InitKafka connects the kafka client; only meaningful in kafka mode.
func (cs *ChatServer) InitKafka() {
	if cs.KafkaClient != nil {
		cs.KafkaClient.Init()
	}
}

// Start runs the broker loop; blocks until Close.
func (cs *ChatServer) Start() {
	cs.Broker.Start()
}

func (cs *ChatServer) Close() {
	cs.Broker.Close()
	if cs.KafkaClient != nil {
		cs.KafkaClient.Close()
	}
}

// PushToUser delivers one event to a connected client. Used by the HTTP
// services for live delivery; reports whether the client received it.
func (cs *ChatServer) PushToUser(userId string, event respond.ChatEventRespond) bool {
	router := cs.routerOf()
	if router == nil {
		return false
	}
	return router.deliver(userId, event, 0)
}

func (cs *ChatServer) routerOf() *eventRouter {
	switch b := cs.Broker.(type) {
	case *ChannelBroker:
		return b.router
	case *KafkaBroker:
		return b.router
	default:
		return nil
	}
}

// GlobalChatServer is set by InitChatServer; the websocket gateway and
// the HTTP services reach the hub through it.
var GlobalChatServer *ChatServer

// InitChatServer builds the hub and wires the package globals.
func InitChatServer(cfg ChatServerConfig) *ChatServer {
	GlobalChatServer = NewChatServer(cfg)
	GlobalBroker = GlobalChatServer.Broker
	return GlobalChatServer
}
