package service

import (
	_ "embed"
	"strings"
)

//go:embed welcome.txt
var welcomeText string

// WelcomeMessage devuelve el texto fijo de bienvenida para el comando /start.
func WelcomeMessage() string {
	return strings.TrimSpace(welcomeText)
}
