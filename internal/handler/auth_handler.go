package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"investment-service/internal/model"
	"investment-service/pkg/logger"
	"investment-service/prometheus"
)

// AuthService is the slice of the service layer the auth handler
// depends on.
type AuthService interface {
	Login(email, password string) (*model.LoginResult, error)
	ValidateToken(token string) (*model.TokenValidation, error)
	TestUsers() ([]model.UserInfo, error)
}

// AuthHandler maps the demonstration auth routes onto the auth
// service.
type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request data"})
	}

	result, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		log.Error("Login failed", zap.String("email", req.Email), zap.Error(err))
		return errorResponse(c, err)
	}
	if !result.Success {
		prometheus.LoginFailureCounter.Inc()
		log.Warn("Login rejected", zap.String("email", req.Email))
		return c.JSON(http.StatusUnauthorized, result)
	}

	log.Info("User logged in",
		zap.Uint("user_id", result.User.ID),
		zap.String("email", result.User.Email))
	return c.JSON(http.StatusOK, result)
}

// ValidateToken handles POST /api/auth/validate-token.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.TokenValidationCounter.Inc()

	var req struct {
		Token string `json:"token"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse token request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request data"})
	}

	result, err := h.auth.ValidateToken(req.Token)
	if err != nil {
		log.Error("Token validation failed", zap.Error(err))
		return errorResponse(c, err)
	}
	if !result.Valid {
		log.Warn("Token rejected", zap.String("reason", result.Reason))
		return c.JSON(http.StatusUnauthorized, result)
	}

	log.Info("Token validated", zap.Uint("user_id", result.User.ID))
	return c.JSON(http.StatusOK, result)
}

// TestUsers handles GET /api/auth/test-users. Any password works for
// the listed emails.
func (h *AuthHandler) TestUsers(c echo.Context) error {
	log := logger.FromEcho(c)

	users, err := h.auth.TestUsers()
	if err != nil {
		log.Error("Failed to list test users", zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "users available for demo login (any password is accepted)",
		"users":   users,
	})
}
