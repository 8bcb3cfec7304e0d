//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for usecase tests.
// Transactions are serialized and applied atomically: a failing callback
// leaves no trace, and conditional updates fail the same way the SQL ones do.
package memstore

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"referral-rewards/internal/domain/referral"
	"referral-rewards/internal/domain/voucher"
	"referral-rewards/internal/infra"
	sqlc "referral-rewards/internal/infra/sqlc/generated"
	"referral-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type ledgerKey struct {
	groupID     string
	newMemberID string
}

type state struct {
	vouchers map[uuid.UUID]shared.VoucherSnapshot
	codes    map[string]uuid.UUID
	ledger   map[ledgerKey]*referral.LedgerEntry
}

func newState() *state {
	return &state{
		vouchers: map[uuid.UUID]shared.VoucherSnapshot{},
		codes:    map[string]uuid.UUID{},
		ledger:   map[ledgerKey]*referral.LedgerEntry{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for id, v := range s.vouchers {
		c.vouchers[id] = v
	}
	for code, id := range s.codes {
		c.codes[code] = id
	}
	for k, e := range s.ledger {
		c.ledger[k] = e
	}
	return c
}

type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   *state

	commits int

	// AfterAvailable runs after every AvailableVouchers read, outside any
	// transaction. Tests use it to let a competing writer in between
	// planning and committing.
	AfterAvailable func(s *Store)
	// ReadErr and CommitErr make the next reads or commits fail.
	ReadErr   error
	CommitErr error
}

func New() *Store {
	return &Store{st: newState()}
}

// Seed inserts vouchers directly, bypassing any transaction.
func (s *Store) Seed(snapshots ...shared.VoucherSnapshot) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range snapshots {
		s.st.vouchers[v.ID] = v
		s.st.codes[v.Code] = v.ID
	}
	return s
}

// Steal assigns an unassigned single-use voucher to ownerID outside the
// code under test.
func (s *Store) Steal(code, ownerID string) bool {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.st.codes[code]
	if !ok {
		return false
	}
	v := s.st.vouchers[id]
	if v.MultiUse || v.OwnerID != nil {
		return false
	}
	now := time.Now().UTC()
	v.OwnerID = &ownerID
	v.AssignedAt = &now
	s.st.vouchers[id] = v
	return true
}

func (s *Store) Voucher(code string) (shared.VoucherSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.st.codes[code]
	if !ok {
		return shared.VoucherSnapshot{}, false
	}
	return s.st.vouchers[id], true
}

func (s *Store) Vouchers() []shared.VoucherSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedVouchers(s.st, func(shared.VoucherSnapshot) bool { return true })
}

func (s *Store) LedgerEntry(groupID, newMemberID string) (*referral.LedgerEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.st.ledger[ledgerKey{groupID, newMemberID}]
	return e, ok
}

func (s *Store) LedgerSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.ledger)
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	work := s.st.clone()
	commitErr := s.CommitErr
	s.mu.Unlock()

	if err := fn(ctx, &memTx{store: s, st: work}); err != nil {
		return err
	}
	if commitErr != nil {
		return commitErr
	}

	s.mu.Lock()
	s.st = work
	s.commits++
	s.mu.Unlock()
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &storeReads{store: s}
}

type storeReads struct {
	store *Store
}

func (r *storeReads) LedgerExists(_ context.Context, groupID, newMemberID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.ReadErr != nil {
		return false, r.store.ReadErr
	}
	_, ok := r.store.st.ledger[ledgerKey{groupID, newMemberID}]
	return ok, nil
}

func (r *storeReads) AvailableVouchers(_ context.Context) ([]shared.VoucherSnapshot, error) {
	r.store.mu.Lock()
	if r.store.ReadErr != nil {
		err := r.store.ReadErr
		r.store.mu.Unlock()
		return nil, err
	}
	out := sortedVouchers(r.store.st, isAvailable)
	hook := r.store.AfterAvailable
	r.store.mu.Unlock()

	if hook != nil {
		hook(r.store)
	}
	return out, nil
}

type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Vouchers() shared.VoucherRepository { return &txVouchers{st: t.st} }
func (t *memTx) Ledger() shared.LedgerRepository    { return &txLedger{st: t.st} }
func (t *memTx) Reads() shared.CommandReads         { return &txReads{st: t.st} }
func (t *memTx) DB() sqlc.DBTX                      { return nil }

type txReads struct {
	st *state
}

func (r *txReads) LedgerExists(_ context.Context, groupID, newMemberID string) (bool, error) {
	_, ok := r.st.ledger[ledgerKey{groupID, newMemberID}]
	return ok, nil
}

func (r *txReads) AvailableVouchers(_ context.Context) ([]shared.VoucherSnapshot, error) {
	return sortedVouchers(r.st, isAvailable), nil
}

type txVouchers struct {
	st *state
}

func (r *txVouchers) Insert(_ context.Context, _ sqlc.DBTX, v *voucher.Voucher) (bool, error) {
	code := v.Code().String()
	if _, ok := r.st.codes[code]; ok {
		return false, nil
	}
	r.st.vouchers[v.ID()] = snapshotOf(v)
	r.st.codes[code] = v.ID()
	return true, nil
}

// ConsumeUses and AssignOwner go through the entity so a plan that breaks a
// voucher invariant fails here as it would against the conditional UPDATEs.
func (r *txVouchers) ConsumeUses(_ context.Context, _ sqlc.DBTX, id uuid.UUID, units int) error {
	v, err := r.load(id)
	if err != nil {
		return err
	}
	if err := v.Consume(units); err != nil {
		if errors.Is(err, voucher.ErrInvalidUnits) {
			return err
		}
		return infra.WrapRepoErr("voucher has fewer remaining uses than planned", err, infra.KindPreconditionFailed)
	}
	r.st.vouchers[id] = snapshotOf(v)
	return nil
}

func (r *txVouchers) AssignOwner(_ context.Context, _ sqlc.DBTX, id uuid.UUID, ownerID string, at time.Time) error {
	v, err := r.load(id)
	if err != nil {
		return err
	}
	if err := v.AssignTo(ownerID, at); err != nil {
		if errors.Is(err, voucher.ErrEmptyOwner) {
			return err
		}
		return infra.WrapRepoErr("voucher is no longer unassigned", err, infra.KindPreconditionFailed)
	}
	r.st.vouchers[id] = snapshotOf(v)
	return nil
}

func (r *txVouchers) load(id uuid.UUID) (*voucher.Voucher, error) {
	s, ok := r.st.vouchers[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindPreconditionFailed, "voucher not found")
	}
	return s.ToDomain()
}

type txLedger struct {
	st *state
}

func (r *txLedger) Insert(_ context.Context, _ sqlc.DBTX, entry *referral.LedgerEntry) (bool, error) {
	key := ledgerKey{entry.GroupID(), entry.NewMemberID()}
	if _, ok := r.st.ledger[key]; ok {
		return false, nil
	}
	r.st.ledger[key] = entry
	return true, nil
}

func isAvailable(s shared.VoucherSnapshot) bool {
	v, err := s.ToDomain()
	return err == nil && v.IsAvailable()
}

func snapshotOf(v *voucher.Voucher) shared.VoucherSnapshot {
	return shared.VoucherSnapshot{
		ID:            v.ID(),
		Code:          v.Code().String(),
		MultiUse:      v.IsMultiUse(),
		OwnerID:       v.OwnerID(),
		AssignedAt:    v.AssignedAt(),
		RemainingUses: v.RemainingUses(),
		InitialUses:   v.InitialUses(),
		AddedBy:       v.AddedBy(),
		AddedAt:       v.AddedAt(),
	}
}

func sortedVouchers(st *state, keep func(shared.VoucherSnapshot) bool) []shared.VoucherSnapshot {
	out := make([]shared.VoucherSnapshot, 0, len(st.vouchers))
	for _, v := range st.vouchers {
		if keep(v) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b shared.VoucherSnapshot) int {
		if c := a.AddedAt.Compare(b.AddedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return out
}
