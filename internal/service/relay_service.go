package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"relay-llm/internal/domain"
	"relay-llm/internal/llm"
	"relay-llm/internal/repository"
	"relay-llm/internal/telegram"
)

// RelayService orquesta un turno completo: cargar historial, normalizar la
// directiva, agregar el turno del usuario, pedir la respuesta al modelo,
// persistir y notificar. No retiene estado entre eventos; todo vive en el
// repositorio de conversaciones.
type RelayService struct {
	logger        *zap.Logger
	conversations repository.ConversationRepository
	llmClient     llm.LLMClient
	sender        telegram.Sender
	systemPrompt  string
}

var ErrRelayNotConfigured = errors.New("relay service not configured")

func NewRelayService(
	logger *zap.Logger,
	conversations repository.ConversationRepository,
	llmClient llm.LLMClient,
	sender telegram.Sender,
	systemPrompt string,
) *RelayService {
	return &RelayService{
		logger:        logger,
		conversations: conversations,
		llmClient:     llmClient,
		sender:        sender,
		systemPrompt:  systemPrompt,
	}
}

// HandleTurn procesa un mensaje entrante de principio a fin. Devuelve error
// solo cuando el turno se aborta sin respuesta (fallo de completions); los
// fallos de lectura, escritura y envio degradan y el turno continua.
func (s *RelayService) HandleTurn(ctx context.Context, chatID int64, username, text string) error {
	if s == nil || s.conversations == nil || s.llmClient == nil || s.sender == nil {
		return ErrRelayNotConfigured
	}

	id := ConversationID(chatID, username)

	history, err := s.conversations.Load(ctx, id)
	if err != nil {
		// Lectura fallida: seguimos con historial vacio antes que perder el turno.
		s.logger.Warn("conversation load failed, using empty history",
			zap.Error(err), zap.String("conversation_id", id))
		history = []domain.Message{}
	}

	messages := ApplyDirective(history, s.systemPrompt)
	messages = append(messages, domain.Message{Role: domain.RoleUser, Content: text})

	reply, err := s.llmClient.Complete(ctx, messages)
	if err != nil {
		// Sin respuesta no hay nada que persistir ni enviar; el historial
		// previo queda intacto.
		s.logger.Error("completion failed, aborting turn",
			zap.Error(err), zap.String("conversation_id", id))
		return fmt.Errorf("completion: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		s.logger.Error("completion returned empty reply, aborting turn",
			zap.String("conversation_id", id))
		return fmt.Errorf("completion: empty reply")
	}

	messages = append(messages, domain.Message{Role: domain.RoleAssistant, Content: reply})

	if err := s.conversations.Save(ctx, id, messages); err != nil {
		// La respuesta igual se entrega: la continuidad de este turno es
		// best-effort cuando la persistencia falla.
		s.logger.Error("conversation save failed",
			zap.Error(err), zap.String("conversation_id", id))
	}

	if err := s.sender.SendMessage(ctx, chatID, reply); err != nil {
		s.logger.Error("send reply failed",
			zap.Error(err), zap.Int64("chat_id", chatID), zap.String("conversation_id", id))
	}

	return nil
}
