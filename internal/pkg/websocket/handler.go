package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/campuserp/internal/middleware"
	"github.com/yigit/campuserp/internal/pkg/apperrors"
)

// Handler for WebSocket connections
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Stream session events
// @Description Upgrades to a WebSocket that first sends the current session state, then every sign-in and sign-out of the calling client session
// @Tags session, websocket
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 500 {object} dto.ErrorResponse "Client session missing"
// @Router /api/v1/session/events [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	sess, ok := middleware.ClientFromContext(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrClientNotFound, "Client session missing"))
		return
	}

	// the upgrader answers the handshake error itself
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("clientId", sess.ID).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:      h.hub,
		conn:     conn,
		send:     make(chan []byte, 16),
		clientID: sess.ID,
		snapshot: sess.Store.Snapshot,
		logger:   h.logger,
	}

	if !h.hub.enter(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
