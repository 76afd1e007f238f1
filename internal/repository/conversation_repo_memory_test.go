package repository

import (
	"context"
	"testing"

	"relay-llm/internal/domain"
)

func TestMemoryConversationRepository_MissingIDReturnsEmpty(t *testing.T) {
	repo := NewMemoryConversationRepository()

	msgs, err := repo.Load(context.Background(), "nope")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected empty history, got %d messages", len(msgs))
	}
}

func TestMemoryConversationRepository_RoundTripStability(t *testing.T) {
	repo := NewMemoryConversationRepository()
	ctx := context.Background()
	original := []domain.Message{
		{Role: domain.RoleSystem, Content: "directiva"},
		{Role: domain.RoleUser, Content: "hola"},
		{Role: domain.RoleAssistant, Content: "buenas"},
	}

	if err := repo.Save(ctx, "42", original); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := repo.Load(ctx, "42")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// save(id, load(id)) debe ser un no-op observable.
	if err := repo.Save(ctx, "42", loaded); err != nil {
		t.Fatalf("second save: %v", err)
	}
	again, err := repo.Load(ctx, "42")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(again) != len(original) {
		t.Fatalf("expected %d messages, got %d", len(original), len(again))
	}
	for i := range original {
		if again[i] != original[i] {
			t.Fatalf("message %d changed across round trips: %+v", i, again[i])
		}
	}
}

func TestMemoryConversationRepository_LoadReturnsCopy(t *testing.T) {
	repo := NewMemoryConversationRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, "42", []domain.Message{{Role: domain.RoleUser, Content: "hola"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, _ := repo.Load(ctx, "42")
	loaded[0].Content = "mutado"

	fresh, _ := repo.Load(ctx, "42")
	if fresh[0].Content != "hola" {
		t.Fatalf("expected stored copy isolated from caller mutation, got %q", fresh[0].Content)
	}
}
