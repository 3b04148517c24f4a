//go:build !integration

package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vpnAdvisor/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecommender struct {
	recs []domain.Recommendation
	err  error
}

func (f *fakeRecommender) Recommend(ctx context.Context, pref domain.UserPreference) ([]domain.Recommendation, error) {
	return f.recs, f.err
}

func (f *fakeRecommender) DebugRecommend(ctx context.Context, pref domain.UserPreference, limit int) ([]domain.ScoredVPN, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.ScoredVPN{}, nil
}

const validBody = `{
	"speed": 6.67,
	"price": 5.0,
	"max_devices": 6,
	"logging_policy": "no_logs",
	"encryption": "AES-256",
	"trial_required": true,
	"country": "United States"
}`

func doRecommend(t *testing.T, svc RecommenderService, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewRecommendHandler(svc).Recommend(c))
	return rec
}

func TestRecommendHandlerOK(t *testing.T) {
	svc := &fakeRecommender{recs: []domain.Recommendation{
		{Name: "Alpha VPN", Score: 72.5, Price: 4.99, Country: "United States"},
	}}

	rec := doRecommend(t, svc, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alpha VPN")
	assert.Contains(t, rec.Body.String(), "72.5")
}

func TestRecommendHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing speed", `{"price": 5, "max_devices": 6, "logging_policy": "no_logs", "encryption": "AES-256"}`},
		{"unknown logging policy", `{"speed": 6.67, "price": 5, "max_devices": 6, "logging_policy": "all_the_logs", "encryption": "AES-256"}`},
		{"unknown encryption", `{"speed": 6.67, "price": 5, "max_devices": 6, "logging_policy": "no_logs", "encryption": "ROT13"}`},
		{"zero devices", `{"speed": 6.67, "price": 5, "max_devices": 0, "logging_policy": "no_logs", "encryption": "AES-256"}`},
		{"malformed json", `{"speed": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRecommend(t, &fakeRecommender{}, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRecommendHandlerServiceFailure(t *testing.T) {
	rec := doRecommend(t, &fakeRecommender{err: errors.New("artifacts gone")}, validBody)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "recommendation service unavailable")
	assert.NotContains(t, rec.Body.String(), "artifacts gone", "internal errors stay opaque")
}
