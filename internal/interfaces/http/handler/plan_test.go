package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlan_DefaultLength(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/v1/plans", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataAsMap(t, resp)
	assert.Equal(t, 3.0, data["days"])
	require.Len(t, data["plan"].([]any), 3)
}

func TestGeneratePlan_PrefersExpiringStock(t *testing.T) {
	env := newTestEnv(t)
	soon := handlerTestNow.AddDate(0, 0, 1)
	env.seedEntry("paneer", 0.2, "kg", &soon)

	w, resp := env.do(t, http.MethodPost, "/api/v1/plans", map[string]any{"days": 2})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataAsMap(t, resp)
	assert.Contains(t, data["expiring_items"], "paneer")
	plan := data["plan"].([]any)
	require.Len(t, plan, 2)
	first := plan[0].(map[string]any)
	assert.Equal(t, "Paneer Bhurji", first["dish"])
	assert.Contains(t, first["uses"], "paneer")
}

func TestGeneratePlan_TooManyDaysRejected(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/v1/plans", map[string]any{"days": 50})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERR_BAD_REQUEST", resp.Error.Code)
}

func TestShortfall_ReturnsToBuyList(t *testing.T) {
	env := newTestEnv(t)
	env.seedEntry("milk", 0.5, "l", nil)

	w, resp := env.do(t, http.MethodPost, "/api/v1/plans/shortfall", map[string]any{
		"plan": []map[string]any{
			{"day": 1, "dish": "Milk Poha", "uses": []string{"milk"}},
			{"day": 2, "dish": "Kheer", "uses": []string{"milk"}},
			{"day": 3, "dish": "Chai", "extra": []string{"milk"}},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataAsMap(t, resp)
	toBuy := data["to_buy"].([]any)
	require.Len(t, toBuy, 1)
	item := toBuy[0].(map[string]any)
	assert.Equal(t, "milk", item["item"])
	assert.Equal(t, 0.75, item["required"])
	assert.Equal(t, 0.25, item["to_buy"])
}

func TestShortfall_EmptyPlanRejected(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/v1/plans/shortfall", map[string]any{
		"plan": []map[string]any{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERR_INVALID_INPUT", resp.Error.Code)
}
