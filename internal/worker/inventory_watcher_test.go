//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"referral-rewards/internal/pkg/config"
	"referral-rewards/internal/usecase/queries"
	"referral-rewards/internal/usecase/shared"
	"referral-rewards/internal/worker"
	queriesmock "referral-rewards/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingNotifier struct {
	alerts []shared.InventoryAlert
}

func (n *recordingNotifier) NotifyGrants(context.Context, []shared.GrantNotice) {}

func (n *recordingNotifier) AlertAdmins(_ context.Context, a shared.InventoryAlert) {
	n.alerts = append(n.alerts, a)
}

type recordingGauge struct {
	multi, single int64
}

func (g *recordingGauge) SetInventoryCapacity(multi, single int64) {
	g.multi, g.single = multi, single
}

func TestInventoryWatcher_Check(t *testing.T) {
	ctx := context.Background()
	cfg := config.InventoryConfig{LowWatermark: 5, CheckInterval: time.Minute}

	testCases := []struct {
		name          string
		setupMock     func(*queriesmock.MockVoucherQueries)
		expectedError bool
		expectAlert   *shared.InventoryAlert
		expectGauge   *recordingGauge
	}{
		{
			name: "capacity above watermark: gauge only",
			setupMock: func(m *queriesmock.MockVoucherQueries) {
				m.EXPECT().Capacity(ctx).Return(&queries.InventoryCapacity{MultiUseRemaining: 4, SingleUseAvailable: 3}, nil)
			},
			expectGauge: &recordingGauge{multi: 4, single: 3},
		},
		{
			name: "capacity at watermark: no alert",
			setupMock: func(m *queriesmock.MockVoucherQueries) {
				m.EXPECT().Capacity(ctx).Return(&queries.InventoryCapacity{MultiUseRemaining: 5}, nil)
			},
			expectGauge: &recordingGauge{multi: 5},
		},
		{
			name: "capacity below watermark: admins alerted",
			setupMock: func(m *queriesmock.MockVoucherQueries) {
				m.EXPECT().Capacity(ctx).Return(&queries.InventoryCapacity{MultiUseRemaining: 1, SingleUseAvailable: 2}, nil)
			},
			expectAlert: &shared.InventoryAlert{Required: 5, Capacity: 3},
			expectGauge: &recordingGauge{multi: 1, single: 2},
		},
		{
			name: "error: store failure",
			setupMock: func(m *queriesmock.MockVoucherQueries) {
				m.EXPECT().Capacity(ctx).Return(nil, errors.New("connection refused"))
			},
			expectedError: true,
			expectGauge:   &recordingGauge{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := queriesmock.NewMockVoucherQueries(ctrl)
			notifier := &recordingNotifier{}
			gauge := &recordingGauge{}
			w := worker.NewInventoryWatcher(mockQueries, notifier, gauge, cfg)

			tc.setupMock(mockQueries)

			err := w.Check(ctx)

			if tc.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expectGauge, gauge)
			if tc.expectAlert != nil {
				require.Len(t, notifier.alerts, 1)
				assert.Equal(t, *tc.expectAlert, notifier.alerts[0])
				assert.Equal(t, 2, notifier.alerts[0].Shortfall())
			} else {
				assert.Empty(t, notifier.alerts)
			}
		})
	}
}

func TestInventoryWatcher_Check_AlertsOncePerLowStretch(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := queriesmock.NewMockVoucherQueries(ctrl)
	gomock.InOrder(
		mockQueries.EXPECT().Capacity(ctx).Return(&queries.InventoryCapacity{SingleUseAvailable: 2}, nil),
		mockQueries.EXPECT().Capacity(ctx).Return(&queries.InventoryCapacity{SingleUseAvailable: 1}, nil),
		mockQueries.EXPECT().Capacity(ctx).Return(nil, errors.New("connection refused")),
		mockQueries.EXPECT().Capacity(ctx).Return(&queries.InventoryCapacity{SingleUseAvailable: 0}, nil),
		mockQueries.EXPECT().Capacity(ctx).Return(&queries.InventoryCapacity{MultiUseRemaining: 5}, nil),
		mockQueries.EXPECT().Capacity(ctx).Return(&queries.InventoryCapacity{MultiUseRemaining: 4}, nil),
	)

	notifier := &recordingNotifier{}
	w := worker.NewInventoryWatcher(mockQueries, notifier, nil, config.InventoryConfig{LowWatermark: 5, CheckInterval: time.Minute})

	require.NoError(t, w.Check(ctx))
	require.NoError(t, w.Check(ctx))
	require.Error(t, w.Check(ctx))
	require.NoError(t, w.Check(ctx))
	require.Len(t, notifier.alerts, 1, "a continuous low stretch alerts once")
	assert.Equal(t, shared.InventoryAlert{Required: 5, Capacity: 2}, notifier.alerts[0])

	require.NoError(t, w.Check(ctx))
	require.NoError(t, w.Check(ctx))
	require.Len(t, notifier.alerts, 2, "recovery re-arms the alert")
	assert.Equal(t, shared.InventoryAlert{Required: 5, Capacity: 4}, notifier.alerts[1])
}

func TestInventoryWatcher_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := queriesmock.NewMockVoucherQueries(ctrl)
	checked := make(chan struct{}, 1)
	mockQueries.EXPECT().Capacity(gomock.Any()).
		DoAndReturn(func(context.Context) (*queries.InventoryCapacity, error) {
			select {
			case checked <- struct{}{}:
			default:
			}
			return &queries.InventoryCapacity{MultiUseRemaining: 100}, nil
		}).AnyTimes()

	w := worker.NewInventoryWatcher(mockQueries, &recordingNotifier{}, nil, config.InventoryConfig{LowWatermark: 1, CheckInterval: time.Hour})

	require.NoError(t, w.Start())
	select {
	case <-checked:
	case <-time.After(5 * time.Second):
		t.Fatal("inventory check did not run on start")
	}
	assert.NoError(t, w.Stop())
}
