package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	config "github.com/phillip/topup-intake-go/config"
	controllers "github.com/phillip/topup-intake-go/controllers"
	notify "github.com/phillip/topup-intake-go/notify"
	routes "github.com/phillip/topup-intake-go/routes"
	store "github.com/phillip/topup-intake-go/store"
	utils "github.com/phillip/topup-intake-go/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	httpCli := &http.Client{Timeout: 30 * time.Second}

	// document store
	var docs store.Documents
	var mongoStore *store.Mongo
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("using in-memory document store, data is lost on restart")
		docs = store.NewMemory()
	default:
		mongoStore, err = store.ConnectMongo(ctx, cfg.MongoURI, cfg.DBName)
		if err != nil {
			logger.Fatal("mongo unavailable", zap.Error(err))
		}
		docs = mongoStore
	}

	// screenshot storage
	var blobs controllers.BlobStore
	switch cfg.BlobProvider {
	case config.BlobCloudinary:
		blobs, err = utils.NewCloudinaryStore(cfg.Cloudinary)
		if err != nil {
			logger.Fatal("cloudinary unavailable", zap.Error(err))
		}
	default:
		blobs = utils.NewObjectStore(cfg.Bucket)
	}

	// email
	var mailer controllers.Mailer
	switch cfg.MailProvider {
	case config.MailSES:
		mailer, err = utils.NewSESMailer(ctx, cfg.AWSRegion, cfg.EmailFrom)
		if err != nil {
			logger.Fatal("ses unavailable", zap.Error(err))
		}
	default:
		mailer = utils.NewZeptoMailer(cfg.Zepto, cfg.EmailFrom, httpCli, logger)
	}

	bot := utils.NewTelegramBot(cfg.Telegram, httpCli)
	if !bot.Enabled() {
		logger.Warn("telegram bot not configured, chat notifications are skipped")
	}
	if cfg.NotifyRecipient() == "" {
		logger.Warn("no operator email configured, email notifications are skipped")
	}

	dispatcher := notify.NewDispatcher(logger, cfg.NotifyTimeout)

	deps := &controllers.Deps{
		Config:   cfg,
		Logger:   logger,
		Validate: controllers.NewValidator(),
		Store:    docs,
		Blobs:    blobs,
		Mailer:   mailer,
		Chat:     bot,
		Notifier: dispatcher,
		Sessions: utils.NewSessionSigner(cfg.Session.Secret, cfg.Session.TTL),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		logger.Warn("pending notifications dropped", zap.Error(err))
	}
	if mongoStore != nil {
		if err := mongoStore.Close(shutdownCtx); err != nil {
			logger.Error("mongo disconnect error", zap.Error(err))
		}
	}

	logger.Info("server stopped",
		zap.Int64("notifications_sent", dispatcher.Sent()),
		zap.Int64("notifications_failed", dispatcher.Failures()),
	)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProd() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}
