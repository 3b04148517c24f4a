package router

import (
	"vpnAdvisor/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations")
	reco.POST("", handler.Recommend)
	reco.POST("/debug", handler.DebugRecommend)
}

func SetCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	vpns := api.Group("/vpns")
	vpns.GET("", handler.GetAll)
}

func SetAuthRoutes(api *echo.Group, handler *rest.AuthHandler) {
	api.POST("/admin/login", handler.Login)
}

func SetAdminRoutes(api *echo.Group, handler *rest.AdminHandler, authRequired echo.MiddlewareFunc) {
	admin := api.Group("/admin", authRequired)

	admin.GET("/scoring/config", handler.GetScoringConfig)
	admin.PUT("/scoring/config", handler.UpsertScoringConfig)
	admin.POST("/catalog/import", handler.ImportCatalog)
	admin.POST("/artifacts/reload", handler.ReloadArtifacts)
}
