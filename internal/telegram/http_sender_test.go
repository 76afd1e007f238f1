package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPSenderSendMessage(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotBody); err != nil {
			t.Errorf("unexpected body: %v", err)
		}
		_, _ = io.WriteString(w, `{"ok":true,"result":{}}`)
	}))
	defer srv.Close()

	s := NewHTTPSender(srv.URL, "token123")
	if err := s.SendMessage(context.Background(), 42, "hola"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPath != "/bottoken123/sendMessage" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotBody.ChatID != 42 || gotBody.Text != "hola" {
		t.Fatalf("unexpected payload: %+v", gotBody)
	}
}

func TestHTTPSenderSendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"ok":false,"description":"chat not found"}`)
	}))
	defer srv.Close()

	s := NewHTTPSender(srv.URL, "token123")
	err := s.SendMessage(context.Background(), 99, "hola")
	if err == nil {
		t.Fatalf("expected error for non-ok response")
	}
}

func TestDisabledSender(t *testing.T) {
	s := NewDisabledSender("telegram sender not configured")
	if err := s.SendMessage(context.Background(), 1, "x"); err == nil {
		t.Fatalf("expected error from disabled sender")
	}
}
