package httperr

import (
	"net/http"

	"referral-rewards/internal/domain/referral"
	"referral-rewards/internal/domain/voucher"
	"referral-rewards/internal/pkg/errs"
	"referral-rewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type classified struct {
	target error
	status int
	msg    string
}

var classification = []classified{
	{errs.ErrInvalidJoinEvent, http.StatusBadRequest, "Invalid join event"},
	{errs.ErrInvalidVoucherBatch, http.StatusBadRequest, "Invalid voucher batch"},
	{errs.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidFilter, http.StatusBadRequest, "Invalid filter"},
	{voucher.ErrInvalidCode, http.StatusBadRequest, "Invalid voucher code"},
	{voucher.ErrInvalidRemainingUses, http.StatusBadRequest, "Invalid remaining uses"},
	{referral.ErrEmptyGroupID, http.StatusBadRequest, "Group id is required"},
	{referral.ErrEmptyNewMemberID, http.StatusBadRequest, "New member id is required"},
	{errs.ErrLedgerEntryNotFound, http.StatusNotFound, "Ledger entry not found"},
	{errs.ErrStoreUnavailable, http.StatusServiceUnavailable, "Voucher store unavailable"},
}

// AbortWithUseCaseError maps use-case sentinels onto HTTP statuses and falls
// back to 500 with fallbackMsg.
func AbortWithUseCaseError(c *gin.Context, err error, fallbackMsg string) {
	for _, cl := range classification {
		if errs.Is(err, cl.target) {
			AbortWithError(c, cl.status, err, cl.msg, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
}
