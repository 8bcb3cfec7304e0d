//go:build unit

package referral_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"referral-rewards/internal/domain/referral"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerCheckerFunc func(ctx context.Context, groupID, newMemberID string) (bool, error)

func (f ledgerCheckerFunc) LedgerExists(ctx context.Context, groupID, newMemberID string) (bool, error) {
	return f(ctx, groupID, newMemberID)
}

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestResolveReferral(t *testing.T) {
	tests := []struct {
		name     string
		referrer *string
		want     referral.Referral
	}{
		{name: "absent", referrer: nil, want: referral.NoReferral{}},
		{name: "blank", referrer: strPtr("  "), want: referral.NoReferral{}},
		{name: "self", referrer: strPtr("u-1"), want: referral.SelfReferral{}},
		{name: "self with padding", referrer: strPtr(" u-1 "), want: referral.SelfReferral{}},
		{name: "other", referrer: strPtr("u-2"), want: referral.ReferredBy{ReferrerID: "u-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, referral.ResolveReferral("u-1", tt.referrer))
		})
	}
}

func TestNewJoinEvent(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ev, err := referral.NewJoinEvent(" g-1 ", " u-1 ", strPtr("u-2"))
		require.NoError(t, err)
		assert.Equal(t, "g-1", ev.GroupID)
		assert.Equal(t, "u-1", ev.NewMemberID)

		id, ok := ev.ReferrerID()
		assert.True(t, ok)
		assert.Equal(t, "u-2", id)
	})

	t.Run("missing group", func(t *testing.T) {
		_, err := referral.NewJoinEvent("", "u-1", nil)
		require.ErrorIs(t, err, referral.ErrEmptyGroupID)
	})

	t.Run("missing member", func(t *testing.T) {
		_, err := referral.NewJoinEvent("g-1", " ", nil)
		require.ErrorIs(t, err, referral.ErrEmptyNewMemberID)
	})

	t.Run("self referral has no referrer id", func(t *testing.T) {
		ev, err := referral.NewJoinEvent("g-1", "u-1", strPtr("u-1"))
		require.NoError(t, err)
		_, ok := ev.ReferrerID()
		assert.False(t, ok)
	})
}

func TestNewPolicy(t *testing.T) {
	t.Run("blank group ids dropped", func(t *testing.T) {
		p, err := referral.NewPolicy([]string{"g-2", " ", "g-1", "g-2"}, 1, 1, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"g-1", "g-2"}, p.EnrolledGroups())
		assert.True(t, p.IsEnrolled("g-1"))
		assert.False(t, p.IsEnrolled(" "))
	})

	t.Run("caller slice mutation does not leak", func(t *testing.T) {
		groups := []string{"g-1"}
		p, err := referral.NewPolicy(groups, 1, 1, true)
		require.NoError(t, err)

		groups[0] = "g-evil"
		assert.True(t, p.IsEnrolled("g-1"))
		assert.False(t, p.IsEnrolled("g-evil"))
	})

	t.Run("invalid counts", func(t *testing.T) {
		_, err := referral.NewPolicy(nil, -1, 1, true)
		require.ErrorIs(t, err, referral.ErrInvalidPolicy)

		_, err = referral.NewPolicy(nil, 1, 2, true)
		require.ErrorIs(t, err, referral.ErrInvalidPolicy)

		_, err = referral.NewPolicy(nil, 0, 0, true)
		require.ErrorIs(t, err, referral.ErrInvalidPolicy)
	})
}

func TestGuard_Evaluate(t *testing.T) {
	policy, err := referral.NewPolicy([]string{"g-1"}, 1, 1, true)
	require.NoError(t, err)

	dbErr := errors.New("connection refused")

	tests := []struct {
		name       string
		groupID    string
		referrer   *string
		exists     bool
		lookupErr  error
		wantLookup bool
		want       referral.Decision
		wantErr    error
	}{
		{
			name:     "group not enrolled wins over missing referral",
			groupID:  "g-other",
			referrer: nil,
			want:     referral.Ineligible(referral.ReasonGroupNotEnrolled),
		},
		{
			name:     "no referral",
			groupID:  "g-1",
			referrer: nil,
			want:     referral.Ineligible(referral.ReasonSelfOrNoReferral),
		},
		{
			name:     "self referral",
			groupID:  "g-1",
			referrer: strPtr("u-1"),
			want:     referral.Ineligible(referral.ReasonSelfOrNoReferral),
		},
		{
			name:       "already adjudicated",
			groupID:    "g-1",
			referrer:   strPtr("u-2"),
			exists:     true,
			wantLookup: true,
			want:       referral.Ineligible(referral.ReasonAlreadyRewarded),
		},
		{
			name:       "eligible",
			groupID:    "g-1",
			referrer:   strPtr("u-2"),
			wantLookup: true,
			want:       referral.Eligible("u-2"),
		},
		{
			name:       "lookup failure propagates",
			groupID:    "g-1",
			referrer:   strPtr("u-2"),
			lookupErr:  dbErr,
			wantLookup: true,
			wantErr:    dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			looked := false
			guard := referral.NewGuard(policy, ledgerCheckerFunc(func(_ context.Context, groupID, newMemberID string) (bool, error) {
				looked = true
				assert.Equal(t, tt.groupID, groupID)
				assert.Equal(t, "u-1", newMemberID)
				return tt.exists, tt.lookupErr
			}))

			ev, err := referral.NewJoinEvent(tt.groupID, "u-1", tt.referrer)
			require.NoError(t, err)

			got, err := guard.Evaluate(context.Background(), ev)

			assert.Equal(t, tt.wantLookup, looked)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedgerEntry(t *testing.T) {
	ev, err := referral.NewJoinEvent("g-1", "u-1", strPtr("u-2"))
	require.NoError(t, err)

	t.Run("reward entry keeps per-unit codes", func(t *testing.T) {
		codes := []string{"M", "M"}
		entry, err := referral.NewRewardEntry(ev, codes, strPtr("S1"), testTime)
		require.NoError(t, err)

		codes[0] = "X"
		assert.Equal(t, []string{"M", "M"}, entry.ReferrerVoucherCodes())
		assert.Equal(t, "u-2", *entry.ReferrerID())
		assert.Equal(t, "S1", *entry.NewMemberVoucherCode())
		assert.True(t, entry.IsReward())
	})

	t.Run("reward entry needs a referral", func(t *testing.T) {
		self, err := referral.NewJoinEvent("g-1", "u-1", strPtr("u-1"))
		require.NoError(t, err)

		_, err = referral.NewRewardEntry(self, []string{"M"}, nil, testTime)
		require.ErrorIs(t, err, referral.ErrNotReferred)
	})

	t.Run("reward entry needs a voucher", func(t *testing.T) {
		_, err := referral.NewRewardEntry(ev, nil, nil, testTime)
		require.ErrorIs(t, err, referral.ErrInvalidVoucherMix)
	})

	t.Run("unreferred marker has no references", func(t *testing.T) {
		marker := referral.NewUnreferredMarker(ev, testTime)
		assert.Nil(t, marker.ReferrerID())
		assert.Empty(t, marker.ReferrerVoucherCodes())
		assert.Nil(t, marker.NewMemberVoucherCode())
		assert.False(t, marker.IsReward())
		assert.Equal(t, testTime, marker.DecidedAt())
	})
}
