package domain

// Roles admitidos dentro de una conversacion.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message es un turno individual dentro de una conversacion.
// Inmutable una vez creado; el orden de la secuencia es significativo
// porque se reenvia completo al servicio de completions en cada turno.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation agrupa el historial completo bajo una identidad estable.
type Conversation struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}
