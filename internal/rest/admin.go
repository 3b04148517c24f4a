package rest

import (
	"context"
	"net/http"

	"vpnAdvisor/business/recommender"
	"vpnAdvisor/domain"
	"vpnAdvisor/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CatalogImporter interface {
		Import(ctx context.Context, src recommender.CatalogRepository) (int, error)
	}

	ArtifactReloader interface {
		Load() error
	}

	CacheInvalidator interface {
		Invalidate(ctx context.Context) error
	}

	AdminHandler struct {
		validate    *validator.Validate
		cfgRepo     recommender.ConfigRepository
		importer    CatalogImporter
		importSrc   recommender.CatalogRepository
		artifacts   ArtifactReloader
		invalidator CacheInvalidator
	}

	ScoringConfigRequest struct {
		Version           int     `json:"version" validate:"required,gt=0"`
		WFit              float64 `json:"w_fit" validate:"gte=0,lte=1"`
		WSpeedSim         float64 `json:"w_speed_sim" validate:"gte=0,lte=100"`
		WPriceSim         float64 `json:"w_price_sim" validate:"gte=0,lte=100"`
		WEncryption       float64 `json:"w_encryption" validate:"gte=0,lte=100"`
		WLogging          float64 `json:"w_logging" validate:"gte=0,lte=100"`
		FallbackThreshold float64 `json:"fallback_threshold" validate:"gte=0,lte=100"`
	}
)

func NewAdminHandler(
	cfgRepo recommender.ConfigRepository,
	importer CatalogImporter,
	importSrc recommender.CatalogRepository,
	artifacts ArtifactReloader,
	invalidator CacheInvalidator,
) *AdminHandler {
	return &AdminHandler{
		validate:    validator.New(),
		cfgRepo:     cfgRepo,
		importer:    importer,
		importSrc:   importSrc,
		artifacts:   artifacts,
		invalidator: invalidator,
	}
}

// GET /api/v1/admin/scoring/config
func (h *AdminHandler) GetScoringConfig(c echo.Context) error {
	cfg, ok, err := h.cfgRepo.GetLatest(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "no scoring config stored; engine uses defaults"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cfg))
}

// PUT /api/v1/admin/scoring/config
func (h *AdminHandler) UpsertScoringConfig(c echo.Context) error {
	var req ScoringConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	cfg := domain.ScoringConfig{
		Version:           req.Version,
		WFit:              req.WFit,
		WSpeedSim:         req.WSpeedSim,
		WPriceSim:         req.WPriceSim,
		WEncryption:       req.WEncryption,
		WLogging:          req.WLogging,
		FallbackThreshold: req.FallbackThreshold,
	}

	if err := h.cfgRepo.Upsert(c.Request().Context(), cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	logger.Info("scoring config updated", "version", req.Version)
	return c.JSON(http.StatusOK, fres.Response.StatusOK(cfg))
}

// POST /api/v1/admin/catalog/import
func (h *AdminHandler) ImportCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.importer.Import(ctx, h.importSrc)
	if err != nil {
		logger.Error("catalog import failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if h.invalidator != nil {
		if err := h.invalidator.Invalidate(ctx); err != nil {
			logger.Warn("catalog cache invalidation failed", "error", err)
		}
	}

	logger.Info("catalog imported", "rows", count)
	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]any{"imported": count}))
}

// POST /api/v1/admin/artifacts/reload
func (h *AdminHandler) ReloadArtifacts(c echo.Context) error {
	if err := h.artifacts.Load(); err != nil {
		logger.Error("artifact reload failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	logger.Info("artifacts reloaded")
	return c.JSON(http.StatusOK, fres.Response.StatusOK("artifacts reloaded"))
}
