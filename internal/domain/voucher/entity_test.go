//go:build unit

package voucher_test

import (
	"strings"
	"testing"
	"time"

	"referral-rewards/internal/domain/voucher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  voucher.Code
		errIs error
	}{
		{name: "plain code", raw: "ABC-123", want: "ABC-123"},
		{name: "surrounding spaces trimmed", raw: "  XYZ  ", want: "XYZ"},
		{name: "case preserved", raw: "aBc", want: "aBc"},
		{name: "empty", raw: "", errIs: voucher.ErrInvalidCode},
		{name: "whitespace only", raw: "   ", errIs: voucher.ErrInvalidCode},
		{name: "inner space", raw: "AB C", errIs: voucher.ErrInvalidCode},
		{name: "inner tab", raw: "AB\tC", errIs: voucher.ErrInvalidCode},
		{name: "max length", raw: strings.Repeat("a", voucher.MaxCodeLength), want: voucher.Code(strings.Repeat("a", voucher.MaxCodeLength))},
		{name: "too long", raw: strings.Repeat("a", voucher.MaxCodeLength+1), errIs: voucher.ErrInvalidCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := voucher.NewCode(tt.raw)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSingleUseVoucher(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("new voucher is available with capacity one", func(t *testing.T) {
		v := voucher.NewSingleUse("S1", "admin-1", now)

		assert.NotEqual(t, uuid.Nil, v.ID())
		assert.False(t, v.IsMultiUse())
		assert.Equal(t, voucher.KindSingleUse, v.Kind())
		assert.True(t, v.IsAvailable())
		assert.Equal(t, 1, v.Capacity())
		assert.Nil(t, v.OwnerID())
		assert.Nil(t, v.AssignedAt())
		assert.Equal(t, "admin-1", v.AddedBy())
		assert.Equal(t, now, v.AddedAt())
	})

	t.Run("assign sets owner and timestamp together", func(t *testing.T) {
		v := voucher.NewSingleUse("S1", "admin-1", now)
		at := now.Add(time.Hour)

		require.NoError(t, v.AssignTo("user-1", at))

		require.NotNil(t, v.OwnerID())
		assert.Equal(t, "user-1", *v.OwnerID())
		require.NotNil(t, v.AssignedAt())
		assert.Equal(t, at, *v.AssignedAt())
		assert.True(t, v.IsAssigned())
		assert.False(t, v.IsAvailable())
		assert.Equal(t, 0, v.Capacity())
	})

	t.Run("owner never changes once set", func(t *testing.T) {
		v := voucher.NewSingleUse("S1", "admin-1", now)
		require.NoError(t, v.AssignTo("user-1", now))

		err := v.AssignTo("user-2", now.Add(time.Minute))

		require.ErrorIs(t, err, voucher.ErrAlreadyAssigned)
		assert.Equal(t, "user-1", *v.OwnerID())
		assert.Equal(t, now, *v.AssignedAt())
	})

	t.Run("empty owner rejected", func(t *testing.T) {
		v := voucher.NewSingleUse("S1", "admin-1", now)
		require.ErrorIs(t, v.AssignTo("", now), voucher.ErrEmptyOwner)
		assert.True(t, v.IsAvailable())
	})

	t.Run("consume rejected", func(t *testing.T) {
		v := voucher.NewSingleUse("S1", "admin-1", now)
		require.ErrorIs(t, v.Consume(1), voucher.ErrNotMultiUse)
	})
}

func TestMultiUseVoucher(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("initial uses must be positive", func(t *testing.T) {
		_, err := voucher.NewMultiUse("M", 0, "admin-1", now)
		require.ErrorIs(t, err, voucher.ErrInvalidRemainingUses)

		_, err = voucher.NewMultiUse("M", -3, "admin-1", now)
		require.ErrorIs(t, err, voucher.ErrInvalidRemainingUses)

		_, err = voucher.NewMultiUse("M", voucher.MaxUses+1, "admin-1", now)
		require.ErrorIs(t, err, voucher.ErrInvalidRemainingUses)

		v, err := voucher.NewMultiUse("M", voucher.MaxUses, "admin-1", now)
		require.NoError(t, err)
		assert.Equal(t, voucher.MaxUses, v.InitialUses())
	})

	t.Run("consume decrements until exhausted", func(t *testing.T) {
		v, err := voucher.NewMultiUse("M", 3, "admin-1", now)
		require.NoError(t, err)
		assert.Equal(t, 3, v.Capacity())
		assert.Equal(t, 3, v.InitialUses())

		require.NoError(t, v.Consume(2))
		assert.Equal(t, 1, v.RemainingUses())
		assert.True(t, v.IsAvailable())

		require.NoError(t, v.Consume(1))
		assert.Equal(t, 0, v.RemainingUses())
		assert.Equal(t, 0, v.Capacity())
		assert.False(t, v.IsAvailable())
	})

	t.Run("never goes negative", func(t *testing.T) {
		v, err := voucher.NewMultiUse("M", 2, "admin-1", now)
		require.NoError(t, err)

		require.ErrorIs(t, v.Consume(3), voucher.ErrInsufficientUses)
		assert.Equal(t, 2, v.RemainingUses())
	})

	t.Run("non-positive units rejected", func(t *testing.T) {
		v, err := voucher.NewMultiUse("M", 2, "admin-1", now)
		require.NoError(t, err)

		require.ErrorIs(t, v.Consume(0), voucher.ErrInvalidUnits)
		require.ErrorIs(t, v.Consume(-1), voucher.ErrInvalidUnits)
	})

	t.Run("cannot be assigned to an owner", func(t *testing.T) {
		v, err := voucher.NewMultiUse("M", 2, "admin-1", now)
		require.NoError(t, err)

		require.ErrorIs(t, v.AssignTo("user-1", now), voucher.ErrNotSingleUse)
		assert.Nil(t, v.OwnerID())
	})
}

func TestReconstruct(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	owner := "user-1"

	tests := []struct {
		name       string
		multiUse   bool
		ownerID    *string
		assignedAt *time.Time
		remaining  int
		initial    int
		errIs      error
	}{
		{name: "unassigned single-use", multiUse: false},
		{name: "assigned single-use", ownerID: &owner, assignedAt: &now},
		{name: "multi-use partially consumed", multiUse: true, remaining: 1, initial: 3},
		{name: "owner without timestamp", ownerID: &owner, errIs: voucher.ErrInconsistentState},
		{name: "timestamp without owner", assignedAt: &now, errIs: voucher.ErrInconsistentState},
		{name: "multi-use with owner", multiUse: true, ownerID: &owner, assignedAt: &now, remaining: 1, initial: 1, errIs: voucher.ErrInconsistentState},
		{name: "negative remaining", multiUse: true, remaining: -1, initial: 1, errIs: voucher.ErrInconsistentState},
		{name: "remaining above initial", multiUse: true, remaining: 4, initial: 3, errIs: voucher.ErrInconsistentState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := voucher.Reconstruct(uuid.New(), "C", tt.multiUse, tt.ownerID, tt.assignedAt, tt.remaining, tt.initial, "admin-1", now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.multiUse, v.IsMultiUse())
		})
	}
}
