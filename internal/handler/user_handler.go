package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"investment-service/internal/model"
	"investment-service/internal/service"
	"investment-service/pkg/logger"
	"investment-service/prometheus"
)

// UserService is the slice of the service layer the user handler
// depends on.
type UserService interface {
	List() ([]model.User, error)
	Get(id uint) (*model.User, error)
	GetInvestments(id uint) ([]model.Investment, error)
	Create(in service.UserInput) (*model.User, error)
	Update(id uint, in service.UserInput) (*model.User, error)
	Delete(id uint) (bool, error)
}

// UserHandler maps user routes onto the user service.
type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/users.
func (h *UserHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	users, err := h.users.List()
	if err != nil {
		log.Error("Failed to list users", zap.Error(err))
		return errorResponse(c, err)
	}

	log.Info("Users retrieved", zap.Int("count", len(users)))
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	user, err := h.users.Get(id)
	if err != nil {
		log.Error("Failed to get user", zap.Uint("user_id", id), zap.Error(err))
		return errorResponse(c, err)
	}
	if user == nil {
		log.Warn("User not found", zap.Uint("user_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}

	return c.JSON(http.StatusOK, user)
}

// GetInvestments handles GET /api/users/:id/investments.
func (h *UserHandler) GetInvestments(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	investments, err := h.users.GetInvestments(id)
	if err != nil {
		log.Warn("Failed to list user investments", zap.Uint("user_id", id), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, investments)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	var in service.UserInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request data"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	user, err := h.users.Create(in)
	if err != nil {
		log.Warn("Failed to create user", zap.String("email", in.Email), zap.Error(err))
		return errorResponse(c, err)
	}

	prometheus.UserOperationsCounter.WithLabelValues("create").Inc()
	log.Info("User created",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	var in service.UserInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Uint("user_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request data"})
	}

	user, err := h.users.Update(id, in)
	if err != nil {
		log.Warn("Failed to update user", zap.Uint("user_id", id), zap.Error(err))
		return errorResponse(c, err)
	}
	if user == nil {
		log.Warn("User not found for update", zap.Uint("user_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}

	prometheus.UserOperationsCounter.WithLabelValues("update").Inc()
	log.Info("User updated", zap.Uint("user_id", id))
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:id. Deleting a user also deletes
// its investments.
func (h *UserHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	deleted, err := h.users.Delete(id)
	if err != nil {
		log.Error("Failed to delete user", zap.Uint("user_id", id), zap.Error(err))
		return errorResponse(c, err)
	}
	if !deleted {
		log.Warn("User not found for deletion", zap.Uint("user_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}

	prometheus.UserOperationsCounter.WithLabelValues("delete").Inc()
	log.Info("User deleted", zap.Uint("user_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted successfully"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errInvalidID
	}
	return uint(id), nil
}
