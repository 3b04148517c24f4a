package rest

import (
	"net/http"
	"time"

	redisrepo "vpnAdvisor/internal/repository/redis"
	"vpnAdvisor/pkg/config"
	"vpnAdvisor/pkg/logger"
	"vpnAdvisor/pkg/utils"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

type (
	AuthHandler struct {
		validate  *validator.Validate
		authCfg   config.AuthConfig
		tokenRepo *redisrepo.TokenRepository
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
)

func NewAuthHandler(authCfg config.AuthConfig, tokenRepo *redisrepo.TokenRepository) *AuthHandler {
	return &AuthHandler{
		validate:  validator.New(),
		authCfg:   authCfg,
		tokenRepo: tokenRepo,
	}
}

// POST /api/v1/admin/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if req.Username != h.authCfg.AdminUsername {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.authCfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "invalid credentials"})
	}

	token, err := utils.GenerateJWT(req.Username, "admin", adminTokenTTL)
	if err != nil {
		logger.Error("Failed to generate token", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to issue token"})
	}

	if h.tokenRepo != nil {
		now := time.Now()
		data := redisrepo.TokenData{
			Username:  req.Username,
			Role:      "admin",
			Token:     token,
			IssuedAt:  now,
			ExpiresAt: now.Add(adminTokenTTL),
		}
		if err := h.tokenRepo.StoreToken(c.Request().Context(), token, data, adminTokenTTL); err != nil {
			logger.Warn("Failed to store token", "error", err)
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]string{"token": token}))
}
