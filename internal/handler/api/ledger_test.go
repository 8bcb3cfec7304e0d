//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"referral-rewards/internal/handler/api"
	resdto "referral-rewards/internal/handler/dto/response"
	"referral-rewards/internal/handler/middleware"
	"referral-rewards/internal/pkg/errs"
	"referral-rewards/tests/common/builder"
	"referral-rewards/tests/common/httptest"
	queriesmock "referral-rewards/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockLedgerQueries
	handler     *api.LedgerHandler
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	s.handler = api.NewLedgerHandler(s.mockQueries)

	requireAdmin := middleware.NewAuthMiddleware(nil, []string{testAdminID}).RequireAdmin()
	s.router.GET("/api/admin/ledger/:groupId/:memberId", fakeAuth, requireAdmin, s.handler.Get)
}

func (s *LedgerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

func (s *LedgerHandlerTestSuite) TestGet() {
	url := "/api/admin/ledger/group-1/member-1"

	s.Run("success: reward entry", func() {
		view := builder.NewJoinBuilder().BuildLedgerView()
		s.mockQueries.EXPECT().Get(gomock.Any(), "group-1", "member-1").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testAdminID)

		var body resdto.LedgerEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.True(body.Rewarded)
		s.Equal([]string{"M-1"}, body.ReferrerVoucherCodes)
		s.Require().NotNil(body.NewMemberVoucherCode)
		s.Equal("S-1", *body.NewMemberVoucherCode)
	})

	s.Run("success: unreferred marker", func() {
		view := builder.NewJoinBuilder().AsUnreferredMarker().BuildLedgerView()
		s.mockQueries.EXPECT().Get(gomock.Any(), "group-1", "member-1").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testAdminID)

		var body resdto.LedgerEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Rewarded)
		s.Nil(body.ReferrerID)
		s.Contains(rec.Body.String(), `"referrerVoucherCodes":[]`)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "group-1", "member-1").Return(nil, errs.ErrLedgerEntryNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testAdminID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ledger entry not found")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testAdminID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load ledger entry")
	})

	s.Run("error: 403 Forbidden for non-admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "user-1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Administrator access required")
	})
}
