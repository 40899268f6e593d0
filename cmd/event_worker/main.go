package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/config"
	"github.com/oksasatya/job-recruitment/internal/container"
	"github.com/oksasatya/job-recruitment/internal/domain/event"
	pginfra "github.com/oksasatya/job-recruitment/internal/infrastructure/postgres"
	"github.com/oksasatya/job-recruitment/internal/notification"
	"github.com/oksasatya/job-recruitment/pkg/helpers"
	"github.com/oksasatya/job-recruitment/pkg/mailer"
)

const handleTimeout = 15 * time.Second

type handler interface {
	Handle(ctx context.Context, env event.Envelope) error
}

// retryPolicy decides what happens to a delivery whose handling failed but may
// succeed later.
type retryPolicy struct {
	Delay       time.Duration
	MaxAttempts int
	Republish   func(ctx context.Context, msg amqp.Delivery, attempts int) error
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-event-worker", cfg.Env)

	if !cfg.NotifyEnabled {
		logger.Info("NOTIFY_ENABLED=false; event worker disabled")
		return
	}
	if cfg.UsesMemoryStorage() {
		log.Fatal("event worker needs STORAGE_DRIVER=postgres")
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pginfra.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	container.SetConfig(cfg)
	container.SetPGPool(pool)
	st := container.GetStores()

	consumer, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue, 16)
	if err != nil {
		log.Fatalf("amqp: %v", err)
	}
	defer consumer.Close()
	msgs, err := consumer.Deliveries("")
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	mg.Tags = []string{"recruitment-events"}
	n := &notification.Notifier{
		Processes:    st.Processes,
		Recruitments: st.Recruitments,
		Teams:        st.Teams,
		Users:        st.Users,
		Resumes:      st.Resumes,
		Sender:       mg,
		Config:       cfg,
		Logger:       logger,
	}

	retry := retryPolicy{Delay: cfg.EventRetryDelay, MaxAttempts: cfg.EventMaxAttempts, Republish: consumer.Republish}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			process(ctx, n, msg, retry, logger)
		}
	}()

	helpers.LogInfo(logger, "event worker listening", logrus.Fields{
		"queue":        cfg.RabbitMQEventsQueue,
		"dead_letter":  helpers.DeadLetterQueue(cfg.RabbitMQEventsQueue),
		"max_attempts": cfg.EventMaxAttempts,
	})
	select {
	case <-ctx.Done():
	case <-done:
		logger.Warn("delivery channel closed")
	}
	logger.Info("shutting down")
}

// process handles one delivery. Undecodable messages and permanent failures go
// to the dead-letter queue. Other failures are published again after the retry
// delay until MaxAttempts is reached.
func process(ctx context.Context, h handler, msg amqp.Delivery, retry retryPolicy, logger *logrus.Logger) {
	var env event.Envelope
	if err := json.Unmarshal(msg.Body, &env); err != nil {
		helpers.LogError(logger, "bad message", err, nil)
		_ = msg.Nack(false, false)
		return
	}
	fields := logrus.Fields{"event": env.Name, "occurred_at": env.OccurredAt}

	c, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()
	err := h.Handle(c, env)
	if err == nil {
		_ = msg.Ack(false)
		return
	}
	if errors.Is(err, notification.ErrPermanent) {
		helpers.LogError(logger, "event dropped", err, fields)
		_ = msg.Nack(false, false)
		return
	}

	attempts := helpers.DeliveryAttempts(msg.Headers) + 1
	fields["attempts"] = attempts
	if attempts >= retry.MaxAttempts {
		helpers.LogError(logger, "event dead-lettered", err, fields)
		_ = msg.Nack(false, false)
		return
	}
	helpers.LogError(logger, "event retry scheduled", err, fields)

	timer := time.NewTimer(retry.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		_ = msg.Nack(false, true)
		return
	case <-timer.C:
	}
	if err := retry.Republish(ctx, msg, attempts); err != nil {
		helpers.LogError(logger, "republish failed", err, fields)
		_ = msg.Nack(false, true)
		return
	}
	_ = msg.Ack(false)
}
