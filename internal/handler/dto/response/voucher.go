package response

import (
	"time"

	"referral-rewards/internal/usecase/commands"
	"referral-rewards/internal/usecase/queries"
)

type VoucherResponse struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	MultiUse      bool       `json:"multiUse"`
	OwnerID       *string    `json:"ownerId,omitempty"`
	AssignedAt    *time.Time `json:"assignedAt,omitempty"`
	RemainingUses int32      `json:"remainingUses"`
	InitialUses   int32      `json:"initialUses"`
	AddedBy       string     `json:"addedBy"`
	AddedAt       time.Time  `json:"addedAt"`
}

type VoucherPageResponse struct {
	Vouchers   []*VoucherResponse `json:"vouchers"`
	NextCursor string             `json:"nextCursor,omitempty"`
}

type AddVouchersResponse struct {
	Inserted []string `json:"inserted"`
	Existing []string `json:"existing"`
}

type CapacityResponse struct {
	MultiUseRemaining  int64 `json:"multiUseRemaining"`
	SingleUseAvailable int64 `json:"singleUseAvailable"`
	Total              int64 `json:"total"`
}

func FromVoucherViews(views []*queries.VoucherView) ([]*VoucherResponse, error) {
	res := make([]*VoucherResponse, 0, len(views))
	if err := copyInto(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromVoucherPage(page *queries.VoucherPage) (*VoucherPageResponse, error) {
	items, err := FromVoucherViews(page.Items)
	if err != nil {
		return nil, err
	}
	resp := &VoucherPageResponse{Vouchers: items}
	if page.Next != nil {
		resp.NextCursor = page.Next.After
	}
	return resp, nil
}

func FromAddVouchersResult(r *commands.AddVouchersResult) *AddVouchersResponse {
	resp := &AddVouchersResponse{
		Inserted: r.Inserted,
		Existing: r.Existing,
	}
	if resp.Inserted == nil {
		resp.Inserted = []string{}
	}
	if resp.Existing == nil {
		resp.Existing = []string{}
	}
	return resp
}

func FromCapacity(c *queries.InventoryCapacity) *CapacityResponse {
	return &CapacityResponse{
		MultiUseRemaining:  c.MultiUseRemaining,
		SingleUseAvailable: c.SingleUseAvailable,
		Total:              c.Total(),
	}
}
