// External test package: routes imports handlers, so testing through the
// real route setup has to happen from outside the handlers package.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakesim/config"
	"cakesim/handlers"
	"cakesim/locale"
	"cakesim/routes"
	"cakesim/session"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	config.AppConfig = config.Config{
		Port:           "3000",
		JWTSecret:      "test-secret",
		DefaultLocale:  locale.German,
		HistoryYears:   3,
		CakeCost:       decimal.NewFromInt(2),
		CakePrice:      decimal.NewFromInt(3),
		StartingBudget: decimal.NewFromInt(2000),
	}
	handlers.Init(session.NewStore())

	app := fiber.New()
	routes.SetupRoutes(app)
	return app
}

func jsonRequest(method, target, token string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return body
}

func createSession(t *testing.T, app *fiber.App) (token string, body map[string]any) {
	t.Helper()
	seed := int64(42)
	resp, err := app.Test(jsonRequest("POST", "/api/v1/sessions", "", map[string]any{
		"locale": locale.English,
		"years":  1,
		"seed":   seed,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body = decodeBody(t, resp)
	token, _ = body["token"].(string)
	require.NotEmpty(t, token)
	return token, body
}

func TestCreateSession(t *testing.T) {
	app := newTestApp(t)
	_, body := createSession(t, app)

	assert.Equal(t, locale.English, body["locale"])
	assert.Equal(t, "2000.00", body["budget"])
	assert.NotEmpty(t, body["sessionId"])

	tomorrow, ok := body["tomorrow"].(map[string]any)
	require.True(t, ok, "missing tomorrow view")
	assert.NotEmpty(t, tomorrow["date"])
	assert.NotContains(t, tomorrow, "sales")
}

func TestCreateSessionEmptyBody(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/sessions", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, locale.German, body["locale"])
}

func TestCreateSessionRejectsBadInput(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/sessions", "", map[string]any{"locale": "Klingon"}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/v1/sessions", "", map[string]any{"years": 11}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetHistory(t *testing.T) {
	app := newTestApp(t)
	token, _ := createSession(t, app)

	resp, err := app.Test(jsonRequest("GET", "/api/v1/session/history", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	total := int(body["total"].(float64))
	assert.GreaterOrEqual(t, total, 365)

	resp, err = app.Test(jsonRequest("GET", "/api/v1/session/history?days=7", token, nil), -1)
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(7), body["total"])

	records, ok := body["records"].([]any)
	require.True(t, ok)
	first := records[0].(map[string]any)
	assert.Contains(t, first, "sales")
	assert.NotNil(t, first["order"])
}

func TestGetRecordsPagination(t *testing.T) {
	app := newTestApp(t)
	token, _ := createSession(t, app)

	resp, err := app.Test(jsonRequest("GET", "/api/v1/session/records?page=2&pageSize=10", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	records, ok := body["records"].([]any)
	require.True(t, ok)
	assert.Len(t, records, 10)

	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["currentPage"])
	assert.Equal(t, float64(10), pagination["pageSize"])
}

func TestPredictStrategies(t *testing.T) {
	app := newTestApp(t)
	token, _ := createSession(t, app)

	for _, strategy := range []string{"heuristic", "knn", "xgb"} {
		resp, err := app.Test(jsonRequest("POST", "/api/v1/session/predict", token, map[string]any{"strategy": strategy}), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, "strategy %s", strategy)

		body := decodeBody(t, resp)
		assert.Equal(t, strategy, body["model_info"])
		assert.NotEmpty(t, body["model_text"])
		if strategy != "xgb" {
			refs, ok := body["reference_days"].([]any)
			require.True(t, ok)
			assert.NotEmpty(t, refs)
		}
	}
}

func TestPredictUnknownStrategy(t *testing.T) {
	app := newTestApp(t)
	token, _ := createSession(t, app)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/session/predict", token, map[string]any{"strategy": "oracle"}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["predicted_sales"])
}

func TestOrderFlow(t *testing.T) {
	app := newTestApp(t)
	token, _ := createSession(t, app)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/session/order", token, map[string]any{"order": -5}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/v1/session/order", token, map[string]any{"order": 400}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	summary, ok := body["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(400), summary["order"])

	sold := summary["sold"].(float64)
	leftover := summary["leftover"].(float64)
	missed := summary["missed"].(float64)
	assert.Equal(t, float64(400), sold+leftover)
	assert.False(t, leftover > 0 && missed > 0)

	feedback, ok := body["feedback"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, []any{"success", "warning", "error"}, feedback["severity"])
	assert.NotEmpty(t, feedback["message"])

	wantBudget := decimal.NewFromInt(2000).
		Add(decimal.NewFromInt(3).Mul(decimal.NewFromFloat(sold))).
		Sub(decimal.NewFromInt(2).Mul(decimal.NewFromInt(400)))
	assert.Equal(t, wantBudget.StringFixed(2), body["budget"])

	// the pending day advanced
	tomorrow, ok := body["tomorrow"].(map[string]any)
	require.True(t, ok)
	day, ok := body["day"].(map[string]any)
	require.True(t, ok)
	assert.NotEqual(t, day["date"], tomorrow["date"])
}

func TestDeleteSession(t *testing.T) {
	app := newTestApp(t)
	token, _ := createSession(t, app)

	resp, err := app.Test(jsonRequest("DELETE", "/api/v1/session/", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// the token is still valid but its session is gone; every guarded
	// endpoint must answer 404 instead of dereferencing a nil session
	stale := []struct {
		method, target string
		body           any
	}{
		{"GET", "/api/v1/session/budget", nil},
		{"GET", "/api/v1/session/history", nil},
		{"GET", "/api/v1/session/records", nil},
		{"GET", "/api/v1/session/tomorrow", nil},
		{"POST", "/api/v1/session/predict", map[string]any{"strategy": "heuristic"}},
		{"POST", "/api/v1/session/order", map[string]any{"order": 100}},
		{"DELETE", "/api/v1/session/", nil},
	}
	for _, tc := range stale {
		resp, err = app.Test(jsonRequest(tc.method, tc.target, token, tc.body), -1)
		require.NoError(t, err, "%s %s", tc.method, tc.target)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "%s %s", tc.method, tc.target)

		body := decodeBody(t, resp)
		assert.Equal(t, "Session not found", body["message"], "%s %s", tc.method, tc.target)
	}
}

func TestSessionEndpointsRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest("GET", "/api/v1/session/budget", "", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
