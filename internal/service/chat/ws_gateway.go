package chat

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	dao "hexachats_server/internal/dao/mysql"
	"hexachats_server/internal/dto/request"
	"hexachats_server/pkg/constants"
)

// MessageBack is one outbound frame. Uuid is the message snowflake id
// when delivery should flip the stored status, zero otherwise.
type MessageBack struct {
	Message []byte
	Uuid    int64
}

// UserConn is one websocket client connection.
type UserConn struct {
	Conn     *websocket.Conn
	Uuid     string
	SendBack chan *MessageBack
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	// The browser client runs on another origin in development.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var ctx = context.Background()

// Read pumps inbound frames into the broker. The sender id is stamped
// server-side from the authenticated connection so clients cannot spoof
// it. Returns on read error, which ends the connection.
func (c *UserConn) Read() {
	defer ClientLogout(c.Uuid)
	for {
		_, jsonMessage, err := c.Conn.ReadMessage()
		if err != nil {
			zap.L().Info("ws read ended", zap.String("user", c.Uuid), zap.Error(err))
			return
		}
		var event request.ChatEventRequest
		if err := json.Unmarshal(jsonMessage, &event); err != nil {
			zap.L().Warn("bad ws frame", zap.String("user", c.Uuid), zap.Error(err))
			continue
		}
		event.SendId = c.Uuid
		// Uuid and SendAt are assigned by the broker on publish;
		// client-supplied values are discarded.
		event.Uuid = 0
		event.SendAt = ""
		stamped, err := json.Marshal(event)
		if err != nil {
			zap.L().Error(err.Error())
			continue
		}
		if err := GlobalBroker.Publish(ctx, stamped); err != nil {
			zap.L().Error("publish ws event failed", zap.Error(err))
		}
	}
}

// Write pumps outbound frames to the websocket and marks chat messages
// delivered once written.
func (c *UserConn) Write() {
	for messageBack := range c.SendBack {
		if err := c.Conn.WriteMessage(websocket.TextMessage, messageBack.Message); err != nil {
			zap.L().Error(err.Error())
			return
		}
		if messageBack.Uuid != 0 && dao.Repos != nil {
			if err := dao.Repos.Message.UpdateStatus(messageBack.Uuid, 1); err != nil {
				zap.L().Error("mark message delivered failed", zap.Error(err))
			}
		}
	}
}

// NewClientInit upgrades the request and registers the connection with
// the broker. clientId is the authenticated user's uuid.
func NewClientInit(c *gin.Context, clientId string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	client := &UserConn{
		Conn:     conn,
		Uuid:     clientId,
		SendBack: make(chan *MessageBack, constants.CHANNEL_SIZE),
	}
	GlobalBroker.RegisterClient(client)
	go client.Read()
	go client.Write()
	zap.L().Info("ws connected", zap.String("user", clientId))
}

// ClientLogout tears the connection down, once.
func ClientLogout(clientId string) error {
	client := GlobalBroker.GetClient(clientId)
	if client != nil {
		GlobalBroker.UnregisterClient(client)
		if err := client.Conn.Close(); err != nil {
			zap.L().Error(err.Error())
			return err
		}
		close(client.SendBack)
	}
	return nil
}
