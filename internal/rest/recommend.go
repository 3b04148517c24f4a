package rest

import (
	"context"
	"net/http"
	"time"

	"vpnAdvisor/domain"
	"vpnAdvisor/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendHandler struct {
		validate   *validator.Validate
		recService RecommenderService
		timeout    time.Duration
	}

	RecommenderService interface {
		Recommend(ctx context.Context, pref domain.UserPreference) ([]domain.Recommendation, error)
		DebugRecommend(ctx context.Context, pref domain.UserPreference, limit int) ([]domain.ScoredVPN, error)
	}

	// RecommendRequest mirrors the preference form: every field the scoring
	// engine consumes is required and bounded here, so the engine itself can
	// assume validated input.
	RecommendRequest struct {
		Speed               float64 `json:"speed" validate:"required,gt=0,lte=1000"`
		Price               float64 `json:"price" validate:"gte=0,lte=100"`
		MaxDevices          int     `json:"max_devices" validate:"required,gt=0,lte=100"`
		LoggingPolicy       string  `json:"logging_policy" validate:"required,oneof=no_logs partial_logs"`
		Encryption          string  `json:"encryption" validate:"required,oneof=AES-128 AES-256 ChaCha20"`
		HandshakeEncryption string  `json:"handshake_encryption"`
		TrialRequired       bool    `json:"trial_required"`
		Country             string  `json:"country"`
		N                   int     `json:"n" validate:"gte=0,lte=50"`
	}
)

func NewRecommendHandler(recService RecommenderService) *RecommendHandler {
	return &RecommendHandler{
		validate:   validator.New(),
		recService: recService,
		timeout:    10 * time.Second,
	}
}

func (r RecommendRequest) toPreference() domain.UserPreference {
	return domain.UserPreference{
		Speed:               r.Speed,
		Price:               r.Price,
		MaxDevices:          r.MaxDevices,
		LoggingPolicy:       r.LoggingPolicy,
		Encryption:          r.Encryption,
		HandshakeEncryption: r.HandshakeEncryption,
		TrialRequired:       r.TrialRequired,
		Country:             r.Country,
	}
}

// POST /api/v1/recommendations
func (h *RecommendHandler) Recommend(c echo.Context) error {
	start := time.Now()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recService.Recommend(ctx, req.toPreference())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "recommendation service unavailable"})
	}

	metrics.RecommendRequests.Inc()
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/recommendations/debug
func (h *RecommendHandler) DebugRecommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	scored, err := h.recService.DebugRecommend(ctx, req.toPreference(), req.N)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "recommendation service unavailable"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(scored))
}
