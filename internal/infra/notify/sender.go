package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"referral-rewards/internal/pkg/config"
	"referral-rewards/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const SignatureHeader = "X-Signature-SHA256"

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks the webhook sender when a URL is configured and the log
// sender otherwise.
func NewSender(cfg config.NotifyConfig) Sender {
	if cfg.WebhookURL == "" {
		slog.Info("notification webhook not configured, notifications go to the log only")
		return NewLogSender(slog.Default())
	}
	return NewWebhookSender(cfg, &http.Client{Timeout: cfg.Timeout})
}

type WebhookSender struct {
	url     string
	secret  []byte
	client  *http.Client
	limiter *rate.Limiter
}

func NewWebhookSender(cfg config.NotifyConfig, client *http.Client) *WebhookSender {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &WebhookSender{
		url:     cfg.WebhookURL,
		secret:  []byte(cfg.WebhookSecret),
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (s *WebhookSender) Send(ctx context.Context, msg Message) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return errs.Wrap(err, "notification rate limit wait")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build notification request")
	}
	req.Header.Set("Content-Type", "application/json")
	if len(s.secret) > 0 {
		mac := hmac.New(sha256.New, s.secret)
		mac.Write(body)
		req.Header.Set(SignatureHeader, hex.EncodeToString(mac.Sum(nil)))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "deliver notification")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("notification endpoint answered %d", resp.StatusCode))
	}
	return nil
}

type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("notification",
		"kind", msg.Kind,
		"recipient_id", msg.RecipientID,
		"group_id", msg.GroupID,
		"role", msg.Role,
		"voucher_codes", msg.GrantedVoucherCodes,
		"shortfall", msg.Shortfall,
	)
	return nil
}
