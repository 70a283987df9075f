package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	config "github.com/phillip/topup-intake-go/config"
	notify "github.com/phillip/topup-intake-go/notify"
	store "github.com/phillip/topup-intake-go/store"
	utils "github.com/phillip/topup-intake-go/utils"
)

const storeTimeout = 10 * time.Second

type BlobStore interface {
	Upload(ctx context.Context, shot utils.Screenshot) (string, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type ChatNotifier interface {
	Notify(ctx context.Context, text string) error
}

// Deps carries every client the handlers use. It is built once in main.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Validate *validator.Validate
	Store    store.Documents
	Blobs    BlobStore
	Mailer   Mailer
	Chat     ChatNotifier
	Notifier *notify.Dispatcher
	Sessions *utils.SessionSigner
}

// notifyOperators queues the chat message and, when an operator address is
// configured, the email. Neither outcome reaches the caller.
func (d *Deps) notifyOperators(c *gin.Context, chatText, subject, body string) {
	ctx := c.Request.Context()

	d.Notifier.Go(ctx, "telegram", func(ctx context.Context) error {
		return d.Chat.Notify(ctx, chatText)
	})

	if to := d.Config.NotifyRecipient(); to != "" {
		d.Notifier.Go(ctx, "email", func(ctx context.Context) error {
			return d.Mailer.Send(ctx, to, subject, body)
		})
	}
}

func storeContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}
