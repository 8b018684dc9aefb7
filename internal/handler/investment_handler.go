package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"investment-service/internal/model"
	"investment-service/internal/service"
	"investment-service/pkg/logger"
	"investment-service/prometheus"
)

// InvestmentService is the slice of the service layer the investment
// handler depends on.
type InvestmentService interface {
	List() ([]model.Investment, error)
	Get(id uint) (*model.Investment, error)
	GetByType(investmentType string) ([]model.Investment, error)
	GetByUser(userID uint) ([]model.Investment, error)
	Create(in service.InvestmentInput) (*model.Investment, error)
	Update(id uint, in service.InvestmentInput) (*model.Investment, error)
	Delete(id uint) (bool, error)
	Summary() (*model.InvestmentSummary, error)
}

// InvestmentHandler maps investment routes onto the investment
// service.
type InvestmentHandler struct {
	investments InvestmentService
}

func NewInvestmentHandler(investments InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investments: investments}
}

// List handles GET /api/investments.
func (h *InvestmentHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	investments, err := h.investments.List()
	if err != nil {
		log.Error("Failed to list investments", zap.Error(err))
		return errorResponse(c, err)
	}

	log.Info("Investments retrieved", zap.Int("count", len(investments)))
	return c.JSON(http.StatusOK, investments)
}

// Get handles GET /api/investments/:id.
func (h *InvestmentHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	investment, err := h.investments.Get(id)
	if err != nil {
		log.Error("Failed to get investment", zap.Uint("investment_id", id), zap.Error(err))
		return errorResponse(c, err)
	}
	if investment == nil {
		log.Warn("Investment not found", zap.Uint("investment_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"message": "investment not found"})
	}

	return c.JSON(http.StatusOK, investment)
}

// GetByType handles GET /api/investments/by-type/:type.
func (h *InvestmentHandler) GetByType(c echo.Context) error {
	log := logger.FromEcho(c)
	investmentType := c.Param("type")

	investments, err := h.investments.GetByType(investmentType)
	if err != nil {
		log.Warn("Failed to filter investments by type",
			zap.String("type", investmentType), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, investments)
}

// GetByUser handles GET /api/investments/by-user/:userId.
func (h *InvestmentHandler) GetByUser(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, err := parseID(c.Param("userId"))
	if err != nil {
		return errorResponse(c, err)
	}

	investments, err := h.investments.GetByUser(userID)
	if err != nil {
		log.Warn("Failed to filter investments by user",
			zap.Uint("user_id", userID), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, investments)
}

// Create handles POST /api/investments.
func (h *InvestmentHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	var in service.InvestmentInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request data"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	investment, err := h.investments.Create(in)
	if err != nil {
		log.Warn("Failed to create investment",
			zap.String("name", in.Name),
			zap.Uint("user_id", in.UserID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	prometheus.InvestmentOperationsCounter.WithLabelValues("create").Inc()
	log.Info("Investment created",
		zap.Uint("investment_id", investment.ID),
		zap.String("type", investment.Type),
		zap.Float64("amount", investment.Amount))
	return c.JSON(http.StatusCreated, investment)
}

// Update handles PUT /api/investments/:id.
func (h *InvestmentHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	var in service.InvestmentInput
	if err := c.Bind(&in); err != nil {
		log.Error("Invalid request data", zap.Uint("investment_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request data"})
	}

	investment, err := h.investments.Update(id, in)
	if err != nil {
		log.Warn("Failed to update investment", zap.Uint("investment_id", id), zap.Error(err))
		return errorResponse(c, err)
	}
	if investment == nil {
		log.Warn("Investment not found for update", zap.Uint("investment_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"message": "investment not found"})
	}

	prometheus.InvestmentOperationsCounter.WithLabelValues("update").Inc()
	log.Info("Investment updated", zap.Uint("investment_id", id))
	return c.JSON(http.StatusOK, investment)
}

// Delete handles DELETE /api/investments/:id.
func (h *InvestmentHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	deleted, err := h.investments.Delete(id)
	if err != nil {
		log.Error("Failed to delete investment", zap.Uint("investment_id", id), zap.Error(err))
		return errorResponse(c, err)
	}
	if !deleted {
		log.Warn("Investment not found for deletion", zap.Uint("investment_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"message": "investment not found"})
	}

	prometheus.InvestmentOperationsCounter.WithLabelValues("delete").Inc()
	log.Info("Investment deleted", zap.Uint("investment_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "investment deleted successfully"})
}

// Summary handles GET /api/investments/summary.
func (h *InvestmentHandler) Summary(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	summary, err := h.investments.Summary()
	if err != nil {
		log.Error("Failed to build investment summary", zap.Error(err))
		return errorResponse(c, err)
	}

	log.Info("Investment summary built",
		zap.Int64("total_investments", summary.TotalInvestments),
		zap.Float64("total_amount", summary.TotalAmount))
	return c.JSON(http.StatusOK, summary)
}
