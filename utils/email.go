package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	config "github.com/phillip/topup-intake-go/config"
)

// email request payload for ZeptoMail API
type emailRequest struct {
	From     emailAddress  `json:"from"`
	To       []toRecipient `json:"to"`
	Subject  string        `json:"subject"`
	HtmlBody string        `json:"htmlbody"`
}

type emailAddress struct {
	Address string `json:"address"`
}

type toRecipient struct {
	Email emailWithName `json:"email_address"`
}

type emailWithName struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// ZeptoMailer sends HTML email through the ZeptoMail HTTP API.
type ZeptoMailer struct {
	apiURL string
	apiKey string
	from   string
	toName string
	client *http.Client
	logger *zap.Logger
}

func NewZeptoMailer(cfg config.Zepto, from string, client *http.Client, logger *zap.Logger) *ZeptoMailer {
	return &ZeptoMailer{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		from:   from,
		toName: cfg.ToName,
		client: client,
		logger: logger,
	}
}

// Send sends an HTML email using the ZeptoMail HTTP API
func (z *ZeptoMailer) Send(ctx context.Context, to, subject, body string) error {
	payload := emailRequest{
		From: emailAddress{Address: z.from},
		To: []toRecipient{
			{
				Email: emailWithName{
					Address: to,
					Name:    z.toName,
				},
			},
		},
		Subject:  subject,
		HtmlBody: body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", z.apiKey)

	resp, err := z.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("zeptomail API error: %s", resp.Status)
	}

	z.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
