package repository

import (
	"context"
	"encoding/json"
	"time"

	"referral-rewards/internal/infra"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/notification_mock.go -package=repositorymock

const (
	NotificationKindGrant          = "grant"
	NotificationKindInventoryAlert = "inventory_alert"

	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	InsertNotificationLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertNotificationLogParams) error
}

type NotificationAttempt struct {
	Kind        string
	RecipientID string
	Payload     any
	Err         error
	At          time.Time
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

// Record stores one delivery attempt outside any reward transaction.
func (r *NotificationRepository) Record(ctx context.Context, attempt NotificationAttempt) error {
	payload, err := json.Marshal(attempt.Payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification payload", err)
	}

	params := sqlc.InsertNotificationLogParams{
		ID:          uuid.New(),
		Kind:        attempt.Kind,
		RecipientID: attempt.RecipientID,
		Payload:     payload,
		Status:      NotificationStatusSent,
		CreatedAt:   pgconv.TimeToPgtype(attempt.At),
	}
	if attempt.Err != nil {
		params.Status = NotificationStatusFailed
		params.LastError = pgconv.StringToPgtype(attempt.Err.Error())
	}

	if err := r.queries.InsertNotificationLog(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to record notification", err)
	}
	return nil
}
