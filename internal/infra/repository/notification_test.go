//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"referral-rewards/internal/infra"
	"referral-rewards/internal/infra/repository"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	repositorymock "referral-rewards/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_Record(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	payload := map[string]any{"codes": []string{"M-1"}}

	testCases := []struct {
		name          string
		attempt       repository.NotificationAttempt
		queryErr      error
		expectStatus  string
		expectLastErr pgtype.Text
		expectedError bool
	}{
		{
			name: "success: delivered attempt",
			attempt: repository.NotificationAttempt{
				Kind:        repository.NotificationKindGrant,
				RecipientID: "user-1",
				Payload:     payload,
				At:          at,
			},
			expectStatus: repository.NotificationStatusSent,
		},
		{
			name: "success: failed attempt keeps the error text",
			attempt: repository.NotificationAttempt{
				Kind:        repository.NotificationKindInventoryAlert,
				RecipientID: "admin-1",
				Payload:     payload,
				Err:         errors.New("webhook returned 502"),
				At:          at,
			},
			expectStatus:  repository.NotificationStatusFailed,
			expectLastErr: pgtype.Text{String: "webhook returned 502", Valid: true},
		},
		{
			name: "error: database error",
			attempt: repository.NotificationAttempt{
				Kind:        repository.NotificationKindGrant,
				RecipientID: "user-1",
				Payload:     payload,
				At:          at,
			},
			queryErr:      errDBConnectionLost,
			expectStatus:  repository.NotificationStatusSent,
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewNotificationRepository(mockQueries, mockDB)

			mockQueries.EXPECT().InsertNotificationLog(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertNotificationLogParams) error {
					assert.NotEqual(t, uuid.Nil, arg.ID)
					assert.Equal(t, tc.attempt.Kind, arg.Kind)
					assert.Equal(t, tc.attempt.RecipientID, arg.RecipientID)
					assert.Equal(t, tc.expectStatus, arg.Status)
					assert.Equal(t, tc.expectLastErr, arg.LastError)
					assert.Equal(t, pgtype.Timestamptz{Time: at, Valid: true}, arg.CreatedAt)
					assert.JSONEq(t, `{"codes":["M-1"]}`, string(arg.Payload))
					return tc.queryErr
				})

			err := repo.Record(ctx, tc.attempt)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNotificationRepository_Record_UnencodablePayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	repo := repository.NewNotificationRepository(mockQueries, &mockDBTX{})

	err := repo.Record(context.Background(), repository.NotificationAttempt{
		Kind:        repository.NotificationKindGrant,
		RecipientID: "user-1",
		Payload:     make(chan int),
	})

	require.Error(t, err)
	var jsonErr *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &jsonErr)
}
