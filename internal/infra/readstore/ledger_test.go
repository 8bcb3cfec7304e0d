//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"referral-rewards/internal/infra"
	"referral-rewards/internal/infra/readstore"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/tests/common/builder"
	readstoremock "referral-rewards/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLedgerReadStore_Exists(t *testing.T) {
	ctx := context.Background()
	params := sqlc.LedgerEntryExistsParams{GroupID: "group-1", NewMemberID: "member-1"}

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockLedgerReadQueries)
		expected      bool
		expectedError bool
	}{
		{
			name: "success: entry present",
			setupMock: func(mock *readstoremock.MockLedgerReadQueries) {
				mock.EXPECT().LedgerEntryExists(ctx, gomock.Any(), params).Return(true, nil)
			},
			expected: true,
		},
		{
			name: "success: entry absent",
			setupMock: func(mock *readstoremock.MockLedgerReadQueries) {
				mock.EXPECT().LedgerEntryExists(ctx, gomock.Any(), params).Return(false, nil)
			},
			expected: false,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockLedgerReadQueries) {
				mock.EXPECT().LedgerEntryExists(ctx, gomock.Any(), params).Return(false, errDBConnectionLost)
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockLedgerReadQueries(ctrl)
			store := readstore.NewLedgerReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			exists, err := store.Exists(ctx, "group-1", "member-1")

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, exists)
		})
	}
}

func TestLedgerReadStore_FindByMember(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		row           sqlc.RewardLedger
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reward entry",
			row:  builder.NewJoinBuilder().BuildInfra(),
		},
		{
			name: "success: unreferred marker keeps an empty code list",
			row: builder.NewJoinBuilder().AsUnreferredMarker().With(func(b *builder.JoinBuilder) {
				b.ReferrerVoucherCodes = nil
			}).BuildInfra(),
		},
		{
			name:          "error: entry not found",
			queryErr:      pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: database error",
			queryErr:      errDBConnectionLost,
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockLedgerReadQueries(ctrl)
			mockQueries.EXPECT().
				GetLedgerEntry(ctx, gomock.Any(), sqlc.GetLedgerEntryParams{GroupID: "group-1", NewMemberID: "member-1"}).
				Return(tc.row, tc.queryErr)

			store := readstore.NewLedgerReadStore(mockQueries, &mockDBTX{})
			view, err := store.FindByMember(ctx, "group-1", "member-1")

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, view)
			assert.Equal(t, tc.row.ID, view.ID)
			assert.Equal(t, tc.row.GroupID, view.GroupID)
			assert.Equal(t, tc.row.NewMemberID, view.NewMemberID)
			assert.NotNil(t, view.ReferrerVoucherCodes)
			assert.Equal(t, tc.row.ReferrerID.Valid, view.ReferrerID != nil)
			assert.Equal(t, tc.row.NewMemberVoucherCode.Valid, view.NewMemberVoucherCode != nil)
			assert.True(t, tc.row.DecidedAt.Time.Equal(view.DecidedAt))
		})
	}
}
