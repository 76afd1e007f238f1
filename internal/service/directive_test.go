package service

import (
	"testing"

	"relay-llm/internal/domain"
)

func TestApplyDirective_EmptyHistory(t *testing.T) {
	out := ApplyDirective(nil, "directiva actual")

	if len(out) != 1 {
		t.Fatalf("expected 1 message, got %d", len(out))
	}
	if out[0].Role != domain.RoleSystem || out[0].Content != "directiva actual" {
		t.Fatalf("expected system directive at position 0, got %+v", out[0])
	}
}

func TestApplyDirective_InsertsWhenFirstIsNotSystem(t *testing.T) {
	history := []domain.Message{
		{Role: domain.RoleUser, Content: "hola"},
		{Role: domain.RoleAssistant, Content: "buenas"},
	}

	out := ApplyDirective(history, "directiva actual")

	if len(out) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(out))
	}
	if out[0].Role != domain.RoleSystem || out[0].Content != "directiva actual" {
		t.Fatalf("expected system directive at position 0, got %+v", out[0])
	}
	if out[1] != history[0] || out[2] != history[1] {
		t.Fatalf("expected history preserved in order, got %+v", out[1:])
	}
}

func TestApplyDirective_OverwritesStaleDirective(t *testing.T) {
	history := []domain.Message{
		{Role: domain.RoleSystem, Content: "directiva vieja"},
		{Role: domain.RoleUser, Content: "hola"},
		{Role: domain.RoleAssistant, Content: "buenas"},
	}

	out := ApplyDirective(history, "directiva actual")

	if len(out) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(out))
	}
	if out[0].Role != domain.RoleSystem || out[0].Content != "directiva actual" {
		t.Fatalf("expected replaced directive at position 0, got %+v", out[0])
	}
	if out[1] != history[1] || out[2] != history[2] {
		t.Fatalf("expected remaining messages untouched, got %+v", out[1:])
	}
}

func TestApplyDirective_DoesNotMutateInput(t *testing.T) {
	history := []domain.Message{
		{Role: domain.RoleSystem, Content: "directiva vieja"},
		{Role: domain.RoleUser, Content: "hola"},
	}

	_ = ApplyDirective(history, "directiva actual")

	if history[0].Content != "directiva vieja" {
		t.Fatalf("expected input sequence untouched, got %+v", history[0])
	}
}

func TestApplyDirective_Idempotent(t *testing.T) {
	history := []domain.Message{
		{Role: domain.RoleUser, Content: "hola"},
	}

	once := ApplyDirective(history, "directiva actual")
	twice := ApplyDirective(once, "directiva actual")

	if len(once) != len(twice) {
		t.Fatalf("expected same length, got %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("expected stable output at %d, got %+v vs %+v", i, once[i], twice[i])
		}
	}
}
