package rest

import (
	"net/http"
	"time"

	"insureAdvisor/pkg/utils"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const tokenTTL = time.Hour

type AuthHandler struct {
	validate   *validator.Validate
	apiKeyHash string
}

func NewAuthHandler(apiKeyHash string) *AuthHandler {
	return &AuthHandler{
		validate:   validator.New(),
		apiKeyHash: apiKeyHash,
	}
}

type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// Token exchanges the configured API key for a signed JWT used by the
// dashboard and other collaborators.
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := utils.CheckAPIKey(h.apiKeyHash, req.APIKey); err != nil {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "invalid api key"})
	}

	token, err := utils.GenerateJWT("dashboard", "service", tokenTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(TokenResponse{
		Token:     token,
		ExpiresIn: int(tokenTTL.Seconds()),
	}))
}
