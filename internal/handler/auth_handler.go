package handler

import (
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"citamed/internal/errors"
	"citamed/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request. The email field is deliberately
// not format-validated: an identifier that matches no account must fail as
// bad credentials, not as a malformed request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response.
type LoginResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	User    *service.UserProfile `json:"user,omitempty"`
	Token   string               `json:"token,omitempty"`
}

// PerfilResponse represents a profile lookup response.
type PerfilResponse struct {
	Success bool                 `json:"success"`
	User    *service.UserProfile `json:"user"`
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return serverError(err)
	}
	if err := c.Validate(&req); err != nil {
		return serverError(err)
	}

	profile, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == errors.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		return serverError(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login exitoso",
		User:    profile,
		Token:   token,
	})
}

// Perfil godoc
// @Summary Profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PerfilResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /perfil [get]
func (h *AuthHandler) Perfil(c echo.Context) error {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Success: false,
			Message: errors.ErrInvalidCredentials.Error(),
		})
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Success: false,
			Message: errors.ErrInvalidCredentials.Error(),
		})
	}
	usuarioID, ok := claims["usuario_id"].(float64)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Success: false,
			Message: errors.ErrInvalidCredentials.Error(),
		})
	}

	profile, err := h.authService.Profile(c.Request().Context(), uint(usuarioID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, PerfilResponse{Success: true, User: profile})
}

// serverError wraps unexpected login-path failures in the 500 envelope. The
// raw error text is part of the response contract clients pattern-match on.
func serverError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
		Success: false,
		Message: "Error del servidor: " + err.Error(),
	})
}
