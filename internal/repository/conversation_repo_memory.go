package repository

import (
	"context"
	"sync"

	"relay-llm/internal/domain"
)

// MemoryConversationRepository guarda conversaciones en memoria del proceso.
// Sirve como fallback cuando no hay backend configurado y como doble de test.
type MemoryConversationRepository struct {
	mu    sync.Mutex
	items map[string][]domain.Message
}

func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{
		items: make(map[string][]domain.Message),
	}
}

func (r *MemoryConversationRepository) Load(_ context.Context, id string) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[id]
	if !ok {
		return []domain.Message{}, nil
	}
	out := make([]domain.Message, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *MemoryConversationRepository) Save(_ context.Context, id string, messages []domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]domain.Message, len(messages))
	copy(stored, messages)
	r.items[id] = stored
	return nil
}
