package request

import (
	"strconv"

	"referral-rewards/internal/usecase/commands"
	"referral-rewards/internal/usecase/queries"
)

type AddVouchersRequest struct {
	Codes         []string `json:"codes" binding:"required,min=1,max=1000,dive,required,max=64"`
	MultiUse      bool     `json:"multiUse"`
	RemainingUses int      `json:"remainingUses" binding:"min=0,max=2147483647"`
}

func (r *AddVouchersRequest) ToCommand(addedBy string) commands.AddVouchersInput {
	return commands.AddVouchersInput{
		Codes:         r.Codes,
		MultiUse:      r.MultiUse,
		RemainingUses: r.RemainingUses,
		AddedBy:       addedBy,
	}
}

// ListVouchersQuery binds the admin listing query string. Unset fields add no
// predicate.
type ListVouchersQuery struct {
	State    string   `form:"state" binding:"omitempty,oneof=all available assigned exhausted"`
	MultiUse string   `form:"multiUse" binding:"omitempty,oneof=true false"`
	OwnerID  string   `form:"ownerId" binding:"omitempty,max=128"`
	AddedBy  string   `form:"addedBy" binding:"omitempty,max=128"`
	Codes    []string `form:"code" binding:"omitempty,max=100,dive,max=64"`
	Cursor   string   `form:"cursor"`
	Limit    int      `form:"limit" binding:"omitempty,min=1"`
}

func (q *ListVouchersQuery) ToParams() (queries.VoucherListParams, error) {
	state, err := queries.ParseVoucherState(q.State)
	if err != nil {
		return queries.VoucherListParams{}, err
	}

	filter := queries.VoucherFilter{State: state, Codes: q.Codes}
	if q.MultiUse != "" {
		multiUse, err := strconv.ParseBool(q.MultiUse)
		if err != nil {
			return queries.VoucherListParams{}, err
		}
		filter.MultiUse = &multiUse
	}
	if q.OwnerID != "" {
		ownerID := q.OwnerID
		filter.OwnerID = &ownerID
	}
	if q.AddedBy != "" {
		addedBy := q.AddedBy
		filter.AddedBy = &addedBy
	}

	params := queries.VoucherListParams{
		Filter: filter,
		Limit:  queries.ValidateLimit(q.Limit),
	}
	if q.Cursor != "" {
		params.Cursor = &queries.Cursor{After: q.Cursor}
	}
	return params, nil
}
