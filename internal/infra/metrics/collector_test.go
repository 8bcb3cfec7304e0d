//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"referral-rewards/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveJoin(t *testing.T) {
	c := metrics.NewCollector()

	c.ObserveJoin("rewarded", "")
	c.ObserveJoin("rewarded", "")
	c.ObserveJoin("ineligible", "already-rewarded")

	expected := `
# HELP referral_joins_total Join events adjudicated, by outcome and ineligibility reason.
# TYPE referral_joins_total counter
referral_joins_total{outcome="ineligible",reason="already-rewarded"} 1
referral_joins_total{outcome="rewarded",reason="none"} 2
`
	err := testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "referral_joins_total")
	assert.NoError(t, err)
}

func TestCollector_InventoryAndConflicts(t *testing.T) {
	c := metrics.NewCollector()

	c.IncCommitConflict()
	c.SetInventoryCapacity(7, 3)
	c.SetInventoryCapacity(5, 3)
	c.ObserveNotification("grant", "failed")

	count, err := testutil.GatherAndCount(c.Registry(), "referral_commit_conflicts_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expected := `
# HELP referral_inventory_capacity Allocatable voucher units by voucher kind.
# TYPE referral_inventory_capacity gauge
referral_inventory_capacity{kind="multi_use"} 5
referral_inventory_capacity{kind="single_use"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "referral_inventory_capacity"))
}

func TestCollector_NilSafe(t *testing.T) {
	var c *metrics.Collector

	assert.NotPanics(t, func() {
		c.ObserveJoin("rewarded", "")
		c.IncCommitConflict()
		c.ObserveNotification("grant", "sent")
		c.SetInventoryCapacity(1, 1)
	})
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.NewCollector()
	c.ObserveJoin("unfulfilled", "")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `referral_joins_total{outcome="unfulfilled",reason="none"} 1`)
}
