package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/phillip/topup-intake-go/config"
)

func TestTelegramNotify(t *testing.T) {
	var path string
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	bot := NewTelegramBot(config.Telegram{BotToken: "123:abc", ChatID: "-10042"}, srv.Client())
	bot.baseURL = srv.URL

	require.NoError(t, bot.Notify(context.Background(), "new order"))
	assert.Equal(t, "/bot123:abc/sendMessage", path)
	assert.Equal(t, "-10042", got["chat_id"])
	assert.Equal(t, "new order", got["text"])
}

func TestTelegramNotifyAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	bot := NewTelegramBot(config.Telegram{BotToken: "123:abc", ChatID: "nope"}, srv.Client())
	bot.baseURL = srv.URL

	assert.ErrorContains(t, bot.Notify(context.Background(), "x"), "chat not found")
}

func TestTelegramDisabledIsNoop(t *testing.T) {
	bot := NewTelegramBot(config.Telegram{}, http.DefaultClient)
	assert.False(t, bot.Enabled())
	assert.NoError(t, bot.Notify(context.Background(), "ignored"))
}
