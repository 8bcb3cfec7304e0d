package queries

import (
	"context"
	"time"

	"referral-rewards/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=voucher.go -destination=../../tests/mock/queries/voucher_mock.go -package=queriesmock

var ErrInvalidFilter = errs.New("invalid voucher filter")

type VoucherState string

const (
	StateAll       VoucherState = "all"
	StateAvailable VoucherState = "available"
	StateAssigned  VoucherState = "assigned"
	StateExhausted VoucherState = "exhausted"
)

func ParseVoucherState(s string) (VoucherState, error) {
	switch VoucherState(s) {
	case "":
		return StateAll, nil
	case StateAll, StateAvailable, StateAssigned, StateExhausted:
		return VoucherState(s), nil
	default:
		return "", errs.Wrapf(ErrInvalidFilter, "unknown state %q", s)
	}
}

// VoucherFilter enumerates the supported predicates. Zero values mean "no
// constraint"; all set predicates are combined with AND.
type VoucherFilter struct {
	State    VoucherState
	MultiUse *bool
	OwnerID  *string
	Codes    []string
	AddedBy  *string
}

type VoucherView struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	MultiUse      bool       `json:"multi_use"`
	OwnerID       *string    `json:"owner_id,omitempty"`
	AssignedAt    *time.Time `json:"assigned_at,omitempty"`
	RemainingUses int32      `json:"remaining_uses"`
	InitialUses   int32      `json:"initial_uses"`
	AddedBy       string     `json:"added_by"`
	AddedAt       time.Time  `json:"added_at"`
}

type InventoryCapacity struct {
	MultiUseRemaining  int64 `json:"multi_use_remaining"`
	SingleUseAvailable int64 `json:"single_use_available"`
}

func (c InventoryCapacity) Total() int64 {
	return c.MultiUseRemaining + c.SingleUseAvailable
}

type VoucherListParams struct {
	Filter VoucherFilter
	Cursor *Cursor
	Limit  int
}

type VoucherPage struct {
	Items []*VoucherView
	Next  *Cursor
}

type VoucherReadStore interface {
	List(ctx context.Context, filter VoucherFilter, after *PageKey, limit int32) ([]*VoucherView, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*VoucherView, error)
	Capacity(ctx context.Context) (*InventoryCapacity, error)
}

type VoucherQueries interface {
	List(ctx context.Context, params VoucherListParams) (*VoucherPage, error)
	// ListByOwner returns single-use vouchers held by a user. Multi-use
	// vouchers have no single owner and never appear.
	ListByOwner(ctx context.Context, userID string) ([]*VoucherView, error)
	Capacity(ctx context.Context) (*InventoryCapacity, error)
}

type voucherQueriesImpl struct {
	store VoucherReadStore
}

func NewVoucherQueries(store VoucherReadStore) VoucherQueries {
	return &voucherQueriesImpl{store: store}
}

func (q *voucherQueriesImpl) List(ctx context.Context, params VoucherListParams) (*VoucherPage, error) {
	filter := params.Filter
	if filter.State == "" {
		filter.State = StateAll
	}
	if _, err := ParseVoucherState(string(filter.State)); err != nil {
		return nil, err
	}
	if filter.State == StateAssigned && filter.MultiUse != nil && *filter.MultiUse {
		return &VoucherPage{}, nil
	}

	var after *PageKey
	if params.Cursor != nil && params.Cursor.After != "" {
		addedAt, id, err := DecodeAfterCursor(params.Cursor.After)
		if err != nil {
			return nil, errs.Wrap(errs.ErrInvalidCursor, err.Error())
		}
		after = &PageKey{AddedAt: addedAt, ID: id}
	}

	limit := ValidateLimit(params.Limit)
	rows, err := q.store.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, err
	}

	page := &VoucherPage{Items: rows}
	if len(rows) > limit {
		last := rows[limit-1]
		page.Next = &Cursor{After: EncodeAfterCursor(last.AddedAt, last.ID)}
		page.Items = rows[:limit]
	}
	return page, nil
}

func (q *voucherQueriesImpl) ListByOwner(ctx context.Context, userID string) ([]*VoucherView, error) {
	if userID == "" {
		return nil, errs.Wrap(ErrInvalidFilter, "owner id is required")
	}
	return q.store.ListByOwner(ctx, userID)
}

func (q *voucherQueriesImpl) Capacity(ctx context.Context) (*InventoryCapacity, error) {
	return q.store.Capacity(ctx)
}
