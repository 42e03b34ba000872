// Package ws is the websocket transport edge: it frames intents off the
// socket and hands them to the router, which owns all state.
package ws

import (
	"encoding/json"
	"time"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/numeshj/chatting-app/internal/config"
	"github.com/numeshj/chatting-app/internal/metrics"
	"github.com/numeshj/chatting-app/internal/protocol"
	"github.com/numeshj/chatting-app/internal/registry"
	"github.com/numeshj/chatting-app/internal/router"
)

type Handler struct {
	router *router.Router
	log    *zap.SugaredLogger

	pingInterval  time.Duration
	writeDeadline time.Duration
	readDeadline  time.Duration
	maxMsgSize    int64
}

func NewHandler(r *router.Router, cfg *config.Config, log *zap.SugaredLogger) *Handler {
	return &Handler{
		router:        r,
		log:           log,
		pingInterval:  cfg.PingInterval,
		writeDeadline: cfg.WriteDeadline,
		readDeadline:  cfg.ReadDeadline,
		maxMsgSize:    cfg.WS.MaxMessageSizeBytes,
	}
}

// Serve runs one websocket session to completion. The session binds an
// identity only once the client sends a connect intent.
func (h *Handler) Serve(conn *websocket.Conn) {
	client := NewClient(conn)
	sess := registry.NewSession(client)
	metrics.ActiveConnections.Inc()
	defer metrics.ActiveConnections.Dec()

	go client.writePump(h.pingInterval, h.writeDeadline)

	conn.SetReadLimit(h.maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(h.readDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.readDeadline))
	})

	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if mt != websocket.TextMessage {
			continue
		}
		var in protocol.Intent
		if err := json.Unmarshal(data, &in); err != nil {
			// malformed frames are dropped, the connection stays open
			continue
		}
		h.router.Dispatch(sess, in)
	}

	h.router.Disconnect(sess)
	client.Close()
}
