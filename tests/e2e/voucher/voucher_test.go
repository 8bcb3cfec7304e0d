//go:build e2e

package voucher_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"referral-rewards/internal/handler/dto/response"
	"referral-rewards/tests/common/authtest"
	"referral-rewards/tests/common/builder"
	"referral-rewards/tests/common/dbtest"
	"referral-rewards/tests/common/httptest"
	"referral-rewards/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	vouchersURL     = "/api/admin/vouchers"
	capacityURL     = "/api/admin/vouchers/capacity"
)

var baseTime = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

type VoucherSuite struct {
	e2e.SharedSuite
	tokens *authtest.JWTHelper
}

func (s *VoucherSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = authtest.NewJWTHelper(s.Config.Admin)
}

func (s *VoucherSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestVoucherSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(VoucherSuite))
}

// =============================================================================
// TestAddVouchers - admin inventory intake
// =============================================================================

func (s *VoucherSuite) TestAddVouchers() {
	s.Run("Normal case: batch with repeats and stored codes", func() {
		t := s.T()
		dbtest.CreateSingleUseVoucher(t, s.DB, "OLD", baseTime)

		body := builder.NewVoucherBuilder().BuildAddRequestDTO("A", "OLD", "A", "B")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, body, s.tokens.AdminToken(t))

		var res response.AddVouchersResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, []string{"A", "B"}, res.Inserted)
		assert.Equal(t, []string{"OLD", "A"}, res.Existing)
	})

	s.Run("Normal case: multi-use batch is allocatable right away", func() {
		t := s.T()
		body := builder.NewVoucherBuilder().AsMultiUse(25).BuildAddRequestDTO("M-1")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, body, s.tokens.AdminToken(t))
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		assert.Equal(t, 25, dbtest.RemainingUses(t, s.DB, "M-1"))

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, capacityURL, nil, s.tokens.AdminToken(t))
		var capacity response.CapacityResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &capacity)
		assert.Equal(t, response.CapacityResponse{MultiUseRemaining: 25, Total: 25}, capacity)
	})

	s.Run("Error case: single-use batch with a use count", func() {
		t := s.T()
		body := builder.NewVoucherBuilder().WithRemainingUses(3).BuildAddRequestDTO("S-1")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, body, s.tokens.AdminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid voucher batch")
	})

	s.Run("Error case: non-admin is forbidden", func() {
		t := s.T()
		body := builder.NewVoucherBuilder().BuildAddRequestDTO("A")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, body, s.tokens.GenerateToken(t, "user-1"))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Administrator access required")
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		body := builder.NewVoucherBuilder().BuildAddRequestDTO("A")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, body, s.tokens.CreateExpiredToken(t, "admin-1"))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestListVouchers - paginated admin listing
// =============================================================================

func (s *VoucherSuite) TestListVouchers() {
	s.Run("Normal case: pages follow insertion order", func() {
		t := s.T()
		for i, code := range []string{"V-1", "V-2", "V-3", "V-4", "V-5"} {
			dbtest.CreateSingleUseVoucher(t, s.DB, code, baseTime.Add(time.Duration(i)*time.Minute))
		}

		var codes []string
		cursor := ""
		for range 5 {
			q := url.Values{"limit": {"2"}}
			if cursor != "" {
				q.Set("cursor", cursor)
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL+"?"+q.Encode(), nil, s.tokens.AdminToken(t))

			var page response.VoucherPageResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
			for _, v := range page.Vouchers {
				codes = append(codes, v.Code)
			}
			cursor = page.NextCursor
			if cursor == "" {
				break
			}
		}
		assert.Equal(t, []string{"V-1", "V-2", "V-3", "V-4", "V-5"}, codes)
	})

	s.Run("Normal case: state and kind filters", func() {
		t := s.T()
		dbtest.CreateSingleUseVoucher(t, s.DB, "S-FREE", baseTime)
		dbtest.CreateSingleUseVoucher(t, s.DB, "S-OWNED", baseTime.Add(time.Minute))
		dbtest.CreateMultiUseVoucher(t, s.DB, "M-LIVE", 2, baseTime.Add(2*time.Minute))
		dbtest.CreateMultiUseVoucher(t, s.DB, "M-DONE", 1, baseTime.Add(3*time.Minute))
		_, err := s.DB.Exec(t.Context(), "UPDATE vouchers SET owner_id = 'user-1', assigned_at = NOW() WHERE code = 'S-OWNED'")
		require.NoError(t, err)
		_, err = s.DB.Exec(t.Context(), "UPDATE vouchers SET remaining_uses = 0 WHERE code = 'M-DONE'")
		require.NoError(t, err)

		tests := []struct {
			query    string
			expected []string
		}{
			{query: "state=available", expected: []string{"S-FREE", "M-LIVE"}},
			{query: "state=assigned", expected: []string{"S-OWNED"}},
			{query: "state=exhausted", expected: []string{"M-DONE"}},
			{query: "multiUse=true", expected: []string{"M-LIVE", "M-DONE"}},
			{query: "ownerId=user-1", expected: []string{"S-OWNED"}},
			{query: "code=M-LIVE&code=S-FREE", expected: []string{"S-FREE", "M-LIVE"}},
		}
		for _, tc := range tests {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL+"?"+tc.query, nil, s.tokens.AdminToken(t))

			var page response.VoucherPageResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
			got := make([]string, 0, len(page.Vouchers))
			for _, v := range page.Vouchers {
				got = append(got, v.Code)
			}
			assert.Equal(t, tc.expected, got, tc.query)
		}
	})

	s.Run("Error case: tampered cursor", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL+"?cursor=not-a-cursor", nil, s.tokens.AdminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})
}

// =============================================================================
// TestListUserVouchers - per-user query
// =============================================================================

func (s *VoucherSuite) TestListUserVouchers() {
	s.Run("Normal case: member sees own single-use vouchers", func() {
		t := s.T()
		dbtest.CreateSingleUseVoucher(t, s.DB, "S-1", baseTime)
		dbtest.CreateSingleUseVoucher(t, s.DB, "S-2", baseTime.Add(time.Minute))
		_, err := s.DB.Exec(t.Context(), "UPDATE vouchers SET owner_id = 'user-1', assigned_at = NOW() WHERE code = 'S-2'")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/user-1/vouchers", nil, s.tokens.GenerateToken(t, "user-1"))

		var body struct {
			Vouchers []*response.VoucherResponse `json:"vouchers"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body.Vouchers, 1)
		assert.Equal(t, "S-2", body.Vouchers[0].Code)
	})

	s.Run("Error case: another member's vouchers", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/user-1/vouchers", nil, s.tokens.GenerateToken(t, "user-2"))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied")
	})
}
