package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"relay-llm/internal/domain"
)

// ConversationRepository lee y escribe el historial completo de una conversacion.
// Load devuelve una secuencia vacia (no un error) cuando la identidad no existe;
// Save sobreescribe el registro completo, ultimo escritor gana.
type ConversationRepository interface {
	Load(ctx context.Context, id string) ([]domain.Message, error)
	Save(ctx context.Context, id string, messages []domain.Message) error
}

type PgConversationRepository struct {
	pool *pgxpool.Pool
}

func NewPgConversationRepository(pool *pgxpool.Pool) *PgConversationRepository {
	return &PgConversationRepository{pool: pool}
}

func (r *PgConversationRepository) Load(ctx context.Context, id string) ([]domain.Message, error) {
	const query = `
		SELECT messages
		FROM conversations
		WHERE id = $1
	`

	var messages []domain.Message
	err := r.pool.QueryRow(ctx, query, id).Scan(&messages)
	if errors.Is(err, pgx.ErrNoRows) {
		return []domain.Message{}, nil
	}
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *PgConversationRepository) Save(ctx context.Context, id string, messages []domain.Message) error {
	const query = `
		INSERT INTO conversations (id, messages, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET messages = EXCLUDED.messages, updated_at = now()
	`

	_, err := r.pool.Exec(ctx, query, id, messages)
	return err
}
