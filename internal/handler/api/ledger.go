package api

import (
	"net/http"

	resdto "referral-rewards/internal/handler/dto/response"
	"referral-rewards/internal/handler/httperr"
	"referral-rewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	q queries.LedgerQueries
}

func NewLedgerHandler(q queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{q: q}
}

// @Summary Get adjudication record
// @Description Ledger entry for a member's join into a group
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param memberId path string true "New member ID"
// @Success 200 {object} resdto.LedgerEntryResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/ledger/{groupId}/{memberId} [get]
func (h *LedgerHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("groupId"), c.Param("memberId"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Failed to load ledger entry")
		return
	}
	resp, err := resdto.FromLedgerView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
