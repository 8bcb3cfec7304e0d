package api

import (
	"net/http"

	reqdto "referral-rewards/internal/handler/dto/request"
	resdto "referral-rewards/internal/handler/dto/response"
	"referral-rewards/internal/handler/httperr"
	"referral-rewards/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type JoinHandler struct {
	cmds commands.RewardCommands
}

func NewJoinHandler(cmds commands.RewardCommands) *JoinHandler {
	return &JoinHandler{cmds: cmds}
}

// @Summary Handle group join
// @Description Adjudicate a member joining a group and allocate referral vouchers when eligible.
// @Description Every adjudication answers 200; the outcome field tells whether vouchers were granted.
// @Tags events
// @Accept json
// @Produce json
// @Param X-Webhook-Token header string true "Shared webhook secret"
// @Param request body reqdto.JoinEventRequest true "Join event"
// @Success 200 {object} resdto.JoinResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/events/join [post]
func (h *JoinHandler) HandleJoin(c *gin.Context) {
	var req reqdto.JoinEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.HandleJoin(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Join handling failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromJoinResult(result))
}
