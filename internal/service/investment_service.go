package service

import (
	"strings"

	"investment-service/internal/apperr"
	"investment-service/internal/model"
	"investment-service/internal/repository"
)

// InvestmentInput carries the mutable investment fields accepted on
// create and update. The investment date is stamped at creation and
// never replaced.
type InvestmentInput struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Amount         float64  `json:"amount"`
	ExpectedReturn *float64 `json:"expected_return,omitempty"`
	Description    *string  `json:"description,omitempty"`
	UserID         uint     `json:"user_id"`
}

// InvestmentService enforces investment validation, checks the owning
// user exists, and orchestrates repository calls.
type InvestmentService struct {
	investments repository.InvestmentRepository
	users       repository.UserRepository
}

func NewInvestmentService(investments repository.InvestmentRepository, users repository.UserRepository) *InvestmentService {
	return &InvestmentService{investments: investments, users: users}
}

// List returns every investment with its owning user attached.
func (s *InvestmentService) List() ([]model.Investment, error) {
	return s.investments.List()
}

// Get returns the investment with its user, or nil when absent.
func (s *InvestmentService) Get(id uint) (*model.Investment, error) {
	return s.investments.GetByID(id)
}

// GetByType filters investments by category, matching the stored type
// case-insensitively.
func (s *InvestmentService) GetByType(investmentType string) ([]model.Investment, error) {
	if strings.TrimSpace(investmentType) == "" {
		return nil, apperr.Validation("type is required")
	}
	return s.investments.GetByType(investmentType)
}

// GetByUser returns the user's investments, failing with NotFound when
// the user does not exist.
func (s *InvestmentService) GetByUser(userID uint) ([]model.Investment, error) {
	exists, err := s.users.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user not found")
	}
	return s.investments.GetByUser(userID)
}

// Create persists a new investment and attaches the owning user to the
// result.
func (s *InvestmentService) Create(in InvestmentInput) (*model.Investment, error) {
	exists, err := s.users.Exists(in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.Validation("user not found")
	}
	if err := validateInvestmentInput(in); err != nil {
		return nil, err
	}

	investment := &model.Investment{
		Name:           in.Name,
		Type:           in.Type,
		Amount:         in.Amount,
		ExpectedReturn: in.ExpectedReturn,
		Description:    in.Description,
		UserID:         in.UserID,
	}
	if err := s.investments.Create(investment); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	investment.User = user
	return investment, nil
}

// Update replaces the mutable fields of an existing investment. It
// returns nil when the investment does not exist, and rejects a
// changed user id that points at no user.
func (s *InvestmentService) Update(id uint, in InvestmentInput) (*model.Investment, error) {
	existing, err := s.investments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if existing.UserID != in.UserID {
		exists, err := s.users.Exists(in.UserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.Validation("user not found")
		}
	}
	if err := validateInvestmentInput(in); err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Type = in.Type
	existing.Amount = in.Amount
	existing.ExpectedReturn = in.ExpectedReturn
	existing.Description = in.Description
	existing.UserID = in.UserID
	existing.User = nil
	if err := s.investments.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete reports whether an investment row was deleted.
func (s *InvestmentService) Delete(id uint) (bool, error) {
	return s.investments.Delete(id)
}

// Summary aggregates the whole portfolio: total count, total amount,
// and a per-type breakdown.
func (s *InvestmentService) Summary() (*model.InvestmentSummary, error) {
	return s.investments.Summary()
}

func validateInvestmentInput(in InvestmentInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Validation("name is required")
	}
	if len(in.Name) > 100 {
		return apperr.Validation("name must be at most 100 characters")
	}
	if strings.TrimSpace(in.Type) == "" {
		return apperr.Validation("type is required")
	}
	if len(in.Type) > 50 {
		return apperr.Validation("type must be at most 50 characters")
	}
	if in.Amount <= 0 {
		return apperr.Validation("amount must be greater than zero")
	}
	if in.ExpectedReturn != nil && (*in.ExpectedReturn < 0 || *in.ExpectedReturn > 100) {
		return apperr.Validation("expected return must be between 0 and 100")
	}
	if in.Description != nil && len(*in.Description) > 500 {
		return apperr.Validation("description must be at most 500 characters")
	}
	return nil
}
