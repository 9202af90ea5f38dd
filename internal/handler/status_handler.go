package handler

import (
	"interview-assistant-be/internal/pkg/logger"
	"interview-assistant-be/internal/session"
	internalWS "interview-assistant-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// StatusHandler upgrades browser connections onto the pipeline status feed.
type StatusHandler struct {
	sessions *session.Repository
	hub      *internalWS.Hub
	logger   logger.ILogger
}

func NewStatusHandler(sessions *session.Repository, hub *internalWS.Hub, log logger.ILogger) *StatusHandler {
	return &StatusHandler{
		sessions: sessions,
		hub:      hub,
		logger:   log,
	}
}

func (h *StatusHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/interview/v1/session/:id/status", h.ServeWs)
}

// ServeWs validates the session and hands the connection to the hub.
func (h *StatusHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if _, ok := h.sessions.Get(sessionID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("StatusHandler", "Status feed opened", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("StatusHandler", "Status feed closed", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
