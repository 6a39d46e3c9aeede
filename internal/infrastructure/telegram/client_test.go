package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testClient(serverURL string) *Client {
	client := NewClient("test-token", 1*time.Second)
	client.apiBase = serverURL
	return client
}

func TestGetUpdates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/bottest-token/getUpdates") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.Form.Get("offset") != "7" {
			t.Errorf("expected offset=7, got %s", r.Form.Get("offset"))
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":[
			{"update_id":8,"message":{"message_id":1,"from":{"id":42},"chat":{"id":420},"text":"/start"}},
			{"update_id":9}
		]}`))
	}))
	defer server.Close()

	updates, err := testClient(server.URL).GetUpdates(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetUpdates returned error: %v", err)
	}

	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(updates))
	}
	msg := updates[0].Message
	if msg == nil || msg.From.ID != 42 || msg.Chat.ID != 420 || msg.Text != "/start" {
		t.Fatalf("unexpected first update: %+v", updates[0])
	}
	if updates[1].Message != nil {
		t.Fatalf("expected nil message on second update")
	}
}

func TestSendKeyboard(t *testing.T) {
	t.Parallel()

	var form map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		form = r.Form
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer server.Close()

	err := testClient(server.URL).SendKeyboard(context.Background(), 420, "пик", []string{"Сравнить программы"})
	if err != nil {
		t.Fatalf("SendKeyboard returned error: %v", err)
	}

	if got := form["chat_id"]; len(got) != 1 || got[0] != "420" {
		t.Fatalf("unexpected chat_id: %v", got)
	}
	if got := form["parse_mode"]; len(got) != 1 || got[0] != "Markdown" {
		t.Fatalf("unexpected parse_mode: %v", got)
	}
	markup := form["reply_markup"]
	if len(markup) != 1 || !strings.Contains(markup[0], "Сравнить программы") {
		t.Fatalf("unexpected reply_markup: %v", markup)
	}
}

func TestReplySetsQuotedMessage(t *testing.T) {
	t.Parallel()

	var form map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		form = r.Form
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer server.Close()

	if err := testClient(server.URL).Reply(context.Background(), 420, 99, "ответ"); err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}

	if got := form["reply_to_message_id"]; len(got) != 1 || got[0] != "99" {
		t.Fatalf("unexpected reply_to_message_id: %v", got)
	}
}

func TestRejectedCallSurfacesDescription(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer server.Close()

	err := testClient(server.URL).SendMessage(context.Background(), 1, "hi")
	if err == nil || !strings.Contains(err.Error(), "chat not found") {
		t.Fatalf("expected rejection error, got %v", err)
	}
}
