package api

import (
	"log/slog"
	"net/http"

	reqdto "referral-rewards/internal/handler/dto/request"
	resdto "referral-rewards/internal/handler/dto/response"
	"referral-rewards/internal/handler/httperr"
	"referral-rewards/internal/handler/middleware"
	"referral-rewards/internal/pkg/errs"
	"referral-rewards/internal/usecase/commands"
	"referral-rewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	cmds commands.InventoryCommands
	q    queries.VoucherQueries
}

func NewVoucherHandler(cmds commands.InventoryCommands, q queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{cmds: cmds, q: q}
}

// @Summary Add vouchers
// @Description Add voucher codes to the inventory. Codes that already exist are reported, not rejected.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddVouchersRequest true "Voucher batch"
// @Success 200 {object} resdto.AddVouchersResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/admin/vouchers [post]
func (h *VoucherHandler) Add(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.AddVouchersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.AddVouchers(c.Request.Context(), req.ToCommand(adminID))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Add vouchers failed")
		return
	}
	slog.Info("vouchers added", "admin_id", adminID, "inserted", len(result.Inserted), "existing", len(result.Existing))
	c.JSON(http.StatusOK, resdto.FromAddVouchersResult(result))
}

// @Summary List vouchers
// @Description List vouchers with typed filters and keyset pagination
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param state query string false "all | available | assigned | exhausted"
// @Param multiUse query bool false "Restrict to multi-use (true) or single-use (false)"
// @Param ownerId query string false "Owner user id"
// @Param addedBy query string false "Admin who added the voucher"
// @Param code query []string false "Exact codes" collectionFormat(multi)
// @Param limit query int false "Max items (default 20, max 200)"
// @Param cursor query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.VoucherPageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/admin/vouchers [get]
func (h *VoucherHandler) List(c *gin.Context) {
	var query reqdto.ListVouchersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	params, err := query.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}

	page, err := h.q.List(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Internal error")
		return
	}
	resp, err := resdto.FromVoucherPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Inventory capacity
// @Description Units still allocatable: remaining multi-use uses plus unassigned single-use vouchers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CapacityResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/admin/vouchers/capacity [get]
func (h *VoucherHandler) Capacity(c *gin.Context) {
	capacity, err := h.q.Capacity(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to get capacity")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCapacity(capacity))
}

// @Summary List user vouchers
// @Description Single-use vouchers assigned to a user. Users can only read their own; admins can read anyone's.
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} map[string][]resdto.VoucherResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/users/{userId}/vouchers [get]
func (h *VoucherHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	if actorID != userID && !middleware.IsAdmin(c) {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("foreign voucher access"), "Access denied", nil)
		return
	}

	views, err := h.q.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Internal error")
		return
	}
	items, err := resdto.FromVoucherViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vouchers": items})
}
