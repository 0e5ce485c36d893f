package notifier

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"TriOracle/internal/metrics"
	"TriOracle/pkg/logger"
)

// TelegramNotifier sends HTML messages through the Telegram Bot API.
type TelegramNotifier struct {
	api     *tgbotapi.BotAPI
	chatID  int64
	limiter *rate.Limiter
	backoff time.Duration
	log     *logger.Logger
}

// NewTelegramNotifier authorizes the bot and targets chatID for broadcast messages.
// proxyURL is optional.
func NewTelegramNotifier(botToken, chatID, proxyURL string, log *logger.Logger) (*TelegramNotifier, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse chat id %q: %w", chatID, err)
	}

	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	if proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(u)
	}
	client := &http.Client{Timeout: 90 * time.Second, Transport: transport}

	api, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	log = log.With("component", "telegram")
	log.Infof("authorized on account %s", api.Self.UserName)

	return &TelegramNotifier{
		api:     api,
		chatID:  id,
		limiter: rate.NewLimiter(rate.Limit(20), 30),
		backoff: time.Second,
		log:     log,
	}, nil
}

// Send sends a message to the configured chat.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	return t.SendTo(ctx, t.chatID, text)
}

// SendTo sends a message to a specific chat.
func (t *TelegramNotifier) SendTo(ctx context.Context, chatID int64, text string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.api.Send(msg); err != nil {
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		return fmt.Errorf("send message: %w", err)
	}
	metrics.NotificationsSent.WithLabelValues("success").Inc()
	return nil
}

// SendWithRetry sends a message to the configured chat with exponential backoff retry.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string, maxRetries int) error {
	return withRetry(ctx, maxRetries, t.backoff, func() error {
		return t.Send(ctx, text)
	}, func(attempt int, err error, wait time.Duration) {
		t.log.Warnw("telegram send failed, retrying",
			"attempt", attempt, "max", maxRetries+1, "error", err, "backoff", wait)
	})
}

// withRetry calls send up to maxRetries+1 times, doubling the wait from base
// after every failure. onFail is called before each wait.
func withRetry(ctx context.Context, maxRetries int, base time.Duration, send func() error, onFail func(attempt int, err error, wait time.Duration)) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if lastErr = send(); lastErr == nil {
			return nil
		}
		if i == maxRetries {
			break
		}
		wait := base * time.Duration(1<<uint(i))
		if onFail != nil {
			onFail(i+1, lastErr, wait)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}
