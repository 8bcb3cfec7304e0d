package notify

import (
	"context"
	"log/slog"
	"slices"

	"referral-rewards/internal/infra/repository"
	"referral-rewards/internal/pkg/clock"
	"referral-rewards/internal/usecase/shared"
)

type AttemptRecorder interface {
	Record(ctx context.Context, attempt repository.NotificationAttempt) error
}

type DeliveryMetrics interface {
	ObserveNotification(kind, status string)
}

// Dispatcher delivers grant notices and admin alerts one recipient at a time.
// A failed recipient is logged and recorded; it never stops the others and
// never reaches the caller.
type Dispatcher struct {
	sender   Sender
	recorder AttemptRecorder
	metrics  DeliveryMetrics
	adminIDs []string
	clock    clock.Clock
}

var _ shared.Notifier = (*Dispatcher)(nil)

func NewDispatcher(sender Sender, recorder AttemptRecorder, metrics DeliveryMetrics, adminIDs []string, clk clock.Clock) *Dispatcher {
	return &Dispatcher{
		sender:   sender,
		recorder: recorder,
		metrics:  metrics,
		adminIDs: slices.Clone(adminIDs),
		clock:    clk,
	}
}

func (d *Dispatcher) NotifyGrants(ctx context.Context, notices []shared.GrantNotice) {
	for _, n := range notices {
		d.deliver(ctx, grantMessage(n))
	}
}

func (d *Dispatcher) AlertAdmins(ctx context.Context, alert shared.InventoryAlert) {
	if len(d.adminIDs) == 0 {
		slog.Warn("inventory alert dropped: no admins configured", "shortfall", alert.Shortfall())
		return
	}
	for _, adminID := range d.adminIDs {
		d.deliver(ctx, alertMessage(adminID, alert))
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) {
	// delivery is detached from request cancellation once the reward is committed
	ctx = context.WithoutCancel(ctx)

	sendErr := d.sender.Send(ctx, msg)
	status := repository.NotificationStatusSent
	if sendErr != nil {
		status = repository.NotificationStatusFailed
		slog.Warn("notification delivery failed",
			"kind", msg.Kind,
			"recipient_id", msg.RecipientID,
			"error", sendErr.Error())
	}
	if d.metrics != nil {
		d.metrics.ObserveNotification(msg.Kind, status)
	}

	if d.recorder == nil {
		return
	}
	err := d.recorder.Record(ctx, repository.NotificationAttempt{
		Kind:        msg.Kind,
		RecipientID: msg.RecipientID,
		Payload:     msg,
		Err:         sendErr,
		At:          d.clock.Now(),
	})
	if err != nil {
		slog.Error("failed to record notification attempt",
			"kind", msg.Kind,
			"recipient_id", msg.RecipientID,
			"error", err.Error())
	}
}
