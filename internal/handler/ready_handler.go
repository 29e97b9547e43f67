package handler

import (
	"pathfinder-be/internal/pkg/logger"
	internalWS "pathfinder-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ReadyHandler pushes a single "ready" frame to browsers waiting on the
// initial data load.
type ReadyHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewReadyHandler(hub *internalWS.Hub, log logger.ILogger) *ReadyHandler {
	return &ReadyHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs upgrades the request and hands the connection to the hub.
func (h *ReadyHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Debug("ReadyHandler", "Starting WebSocket session", map[string]interface{}{"remote": conn.RemoteAddr().String()})
		internalWS.ServeWs(h.hub, conn)
		h.logger.Debug("ReadyHandler", "WebSocket session ended", nil)
	})(c)
}

// RegisterRoutes registers the websocket route.
func (h *ReadyHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/ready", h.ServeWs)
}
