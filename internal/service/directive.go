package service

import "relay-llm/internal/domain"

// ApplyDirective normaliza la secuencia para que la posicion 0 sea exactamente
// el mensaje system con la directiva vigente. Si el historial arranca con una
// directiva vieja solo se reemplaza su contenido; el resto de los mensajes no
// se toca. Funcion pura: no modifica la secuencia de entrada.
func ApplyDirective(messages []domain.Message, directive string) []domain.Message {
	system := domain.Message{Role: domain.RoleSystem, Content: directive}

	if len(messages) == 0 || messages[0].Role != domain.RoleSystem {
		out := make([]domain.Message, 0, len(messages)+1)
		out = append(out, system)
		return append(out, messages...)
	}

	out := make([]domain.Message, len(messages))
	copy(out, messages)
	out[0] = system
	return out
}
