package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"relay-llm/internal/service"
	"relay-llm/internal/telegram"
)

// WebhookHandler mantiene dependencias para el webhook de Telegram.
type WebhookHandler struct {
	logger *zap.Logger
	relay  *service.RelayService
	sender telegram.Sender
}

// NewWebhookHandler crea una instancia de WebhookHandler con dependencias necesarias.
func NewWebhookHandler(logger *zap.Logger, relay *service.RelayService, sender telegram.Sender) *WebhookHandler {
	return &WebhookHandler{
		logger: logger,
		relay:  relay,
		sender: sender,
	}
}

type telegramUpdate struct {
	Message *struct {
		Chat struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"chat"`
		Text string `json:"text"`
	} `json:"message"`
}

// HandleUpdate maneja POST /telegram/webhook. Siempre responde 200 salvo ante
// un fallo inesperado fuera de la taxonomia (lo captura gin.Recovery): un
// no-200 haria que Telegram reentregue el mismo evento.
func (h *WebhookHandler) HandleUpdate(c *gin.Context) {
	eventID := uuid.NewString()

	var upd telegramUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		h.logger.Warn("malformed webhook payload",
			zap.Error(err), zap.String("event_id", eventID))
		c.Status(http.StatusOK)
		return
	}
	if upd.Message == nil {
		// Evento sin mensaje (edicion, miembro nuevo, etc.): no-op.
		c.Status(http.StatusOK)
		return
	}

	chatID := upd.Message.Chat.ID
	username := upd.Message.Chat.Username
	text := upd.Message.Text

	if strings.TrimSpace(text) == "/start" {
		// Bienvenida fija, sin tocar el historial.
		if err := h.sender.SendMessage(c.Request.Context(), chatID, service.WelcomeMessage()); err != nil {
			h.logger.Error("send welcome failed",
				zap.Error(err), zap.Int64("chat_id", chatID), zap.String("event_id", eventID))
		}
		c.Status(http.StatusOK)
		return
	}

	if err := h.relay.HandleTurn(c.Request.Context(), chatID, username, text); err != nil {
		// Ya logueado con detalle en el servicio; el ack sigue siendo 200.
		h.logger.Warn("turn aborted",
			zap.Error(err), zap.Int64("chat_id", chatID), zap.String("event_id", eventID))
	}

	c.Status(http.StatusOK)
}

// Health maneja GET / para verificacion simple de vida.
func (h *WebhookHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Telegram relay with conversation store is up and running!")
}
