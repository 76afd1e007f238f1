package service

import "strconv"

// ConversationID deriva la identidad estable de una conversacion a partir del
// chat de origen. El username hace la clave diagnosticable; el id numerico
// garantiza unicidad aunque el username cambie o falte.
func ConversationID(chatID int64, username string) string {
	if username != "" {
		return "@" + username + "-" + strconv.FormatInt(chatID, 10)
	}
	return strconv.FormatInt(chatID, 10)
}
