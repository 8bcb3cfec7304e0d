package readstore

import (
	"context"

	"referral-rewards/internal/infra"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/internal/pkg/pgconv"
	"referral-rewards/internal/usecase/queries"
	"referral-rewards/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/readstore/voucher_mock.go -package=readstoremock

type VoucherReadQueries interface {
	ListAvailableVouchers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Vouchers, error)
	ListVouchersByOwner(ctx context.Context, db sqlc.DBTX, ownerID pgtype.Text) ([]sqlc.Vouchers, error)
	ListVouchersFiltered(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVouchersFilteredParams) ([]sqlc.Vouchers, error)
	GetInventoryCapacity(ctx context.Context, db sqlc.DBTX) (sqlc.GetInventoryCapacityRow, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      sqlc.DBTX
}

func NewVoucherReadStore(queries VoucherReadQueries, db sqlc.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherReadStore) List(ctx context.Context, filter queries.VoucherFilter, after *queries.PageKey, limit int32) ([]*queries.VoucherView, error) {
	rows, err := r.queries.ListVouchersFiltered(ctx, r.db, FilterToParams(filter, after, limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers", err)
	}
	return mapVoucherRows(rows), nil
}

func (r *VoucherReadStore) ListByOwner(ctx context.Context, ownerID string) ([]*queries.VoucherView, error) {
	rows, err := r.queries.ListVouchersByOwner(ctx, r.db, pgconv.StringToPgtype(ownerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers by owner", err)
	}
	return mapVoucherRows(rows), nil
}

func (r *VoucherReadStore) Capacity(ctx context.Context) (*queries.InventoryCapacity, error) {
	row, err := r.queries.GetInventoryCapacity(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get inventory capacity", err)
	}
	return &queries.InventoryCapacity{
		MultiUseRemaining:  row.MultiUseRemaining,
		SingleUseAvailable: row.SingleUseAvailable,
	}, nil
}

// Available feeds the allocator; rows come back oldest-added first.
func (r *VoucherReadStore) Available(ctx context.Context) ([]shared.VoucherSnapshot, error) {
	rows, err := r.queries.ListAvailableVouchers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available vouchers", err)
	}
	snapshots := make([]shared.VoucherSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, shared.VoucherSnapshot{
			ID:            row.ID,
			Code:          row.Code,
			MultiUse:      row.IsMultiUse,
			OwnerID:       pgconv.StringPtrFromPgtype(row.OwnerID),
			AssignedAt:    pgconv.TimePtrFromPgtype(row.AssignedAt),
			RemainingUses: int(row.RemainingUses),
			InitialUses:   int(row.InitialUses),
			AddedBy:       row.AddedBy,
			AddedAt:       pgconv.TimeFromPgtype(row.AddedAt),
		})
	}
	return snapshots, nil
}

// FilterToParams maps the typed filter onto the nullable query arguments;
// an unset predicate becomes SQL NULL and is skipped by the query.
func FilterToParams(filter queries.VoucherFilter, after *queries.PageKey, limit int32) sqlc.ListVouchersFilteredParams {
	state := filter.State
	if state == "" {
		state = queries.StateAll
	}
	codes := filter.Codes
	if codes == nil {
		codes = []string{}
	}

	params := sqlc.ListVouchersFilteredParams{
		MultiUse: pgconv.BoolPtrToPgtype(filter.MultiUse),
		OwnerID:  pgconv.StringPtrToPgtype(filter.OwnerID),
		Codes:    codes,
		State:    string(state),
		AddedBy:  pgconv.StringPtrToPgtype(filter.AddedBy),
		RowLimit: limit,
	}
	if after != nil {
		id := after.ID
		params.AfterAddedAt = pgconv.TimeToPgtype(after.AddedAt)
		params.AfterID = &id
	}
	return params
}

func mapVoucherRows(rows []sqlc.Vouchers) []*queries.VoucherView {
	views := make([]*queries.VoucherView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.VoucherView{
			ID:            row.ID,
			Code:          row.Code,
			MultiUse:      row.IsMultiUse,
			OwnerID:       pgconv.StringPtrFromPgtype(row.OwnerID),
			AssignedAt:    pgconv.TimePtrFromPgtype(row.AssignedAt),
			RemainingUses: row.RemainingUses,
			InitialUses:   row.InitialUses,
			AddedBy:       row.AddedBy,
			AddedAt:       pgconv.TimeFromPgtype(row.AddedAt),
		})
	}
	return views
}
