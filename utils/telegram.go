package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	config "github.com/phillip/topup-intake-go/config"
)

const telegramAPI = "https://api.telegram.org"

// TelegramBot posts plain text messages to one fixed chat.
type TelegramBot struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

func NewTelegramBot(cfg config.Telegram, client *http.Client) *TelegramBot {
	return &TelegramBot{
		token:   cfg.BotToken,
		chatID:  cfg.ChatID,
		baseURL: telegramAPI,
		client:  client,
	}
}

// Enabled reports whether both the bot token and chat id are configured.
func (t *TelegramBot) Enabled() bool {
	return t.token != "" && t.chatID != ""
}

func (t *TelegramBot) Notify(ctx context.Context, text string) error {
	if !t.Enabled() {
		return nil
	}

	payload, err := json.Marshal(map[string]any{
		"chat_id":                  t.chatID,
		"text":                     text,
		"disable_web_page_preview": true,
	})
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(t.baseURL, "/"), t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer res.Body.Close()

	var body struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("telegram http %d: %w", res.StatusCode, err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 || !body.OK {
		return fmt.Errorf("telegram http %d: %s", res.StatusCode, body.Description)
	}

	return nil
}
