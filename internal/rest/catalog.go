package rest

import (
	"context"
	"net/http"

	"vpnAdvisor/domain"
	"vpnAdvisor/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	GetCatalog(ctx context.Context) ([]domain.VPNService, error)
}

type CatalogHandler struct {
	catalogService CatalogService
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GET /api/v1/vpns
func (h *CatalogHandler) GetAll(c echo.Context) error {
	services, err := h.catalogService.GetCatalog(c.Request().Context())
	if err != nil {
		logger.Error("Failed to load catalog", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(services))
}
