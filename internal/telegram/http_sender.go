package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPSender implementa Sender contra el metodo sendMessage de la Bot API.
type HTTPSender struct {
	apiBase string
	token   string
	client  *http.Client
}

// NewHTTPSender construye un sender para el bot identificado por token.
// apiBase es la raiz de la API (p.ej. "https://api.telegram.org").
func NewHTTPSender(apiBase, token string) *HTTPSender {
	if apiBase == "" {
		apiBase = "https://api.telegram.org"
	}
	return &HTTPSender{
		apiBase: strings.TrimRight(apiBase, "/"),
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

func (s *HTTPSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	bodyBytes, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := s.apiBase + "/bot" + s.token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var sr sendMessageResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if !sr.OK {
		return fmt.Errorf("telegram api error: status=%d description=%q", resp.StatusCode, sr.Description)
	}
	return nil
}
