package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"investment-service/internal/model"
)

// InvestmentRepository translates investment domain calls into storage
// queries.
type InvestmentRepository interface {
	List() ([]model.Investment, error)
	GetByID(id uint) (*model.Investment, error)
	// GetByType matches the stored type case-insensitively.
	GetByType(investmentType string) ([]model.Investment, error)
	GetByUser(userID uint) ([]model.Investment, error)
	Create(investment *model.Investment) error
	Update(investment *model.Investment) error
	Delete(id uint) (bool, error)
	Summary() (*model.InvestmentSummary, error)
}

type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository returns a GORM-backed InvestmentRepository.
func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &investmentRepository{db: db}
}

func (r *investmentRepository) List() ([]model.Investment, error) {
	var investments []model.Investment
	if err := r.db.Preload("User").Find(&investments).Error; err != nil {
		return nil, err
	}
	return investments, nil
}

func (r *investmentRepository) GetByID(id uint) (*model.Investment, error) {
	var investment model.Investment
	err := r.db.Preload("User").First(&investment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &investment, nil
}

func (r *investmentRepository) GetByType(investmentType string) ([]model.Investment, error) {
	var investments []model.Investment
	err := r.db.Preload("User").
		Where("LOWER(type) = LOWER(?)", investmentType).
		Find(&investments).Error
	if err != nil {
		return nil, err
	}
	return investments, nil
}

func (r *investmentRepository) GetByUser(userID uint) ([]model.Investment, error) {
	var investments []model.Investment
	if err := r.db.Where("user_id = ?", userID).Find(&investments).Error; err != nil {
		return nil, err
	}
	return investments, nil
}

func (r *investmentRepository) Create(investment *model.Investment) error {
	investment.InvestmentDate = time.Now().UTC()
	return r.db.Create(investment).Error
}

func (r *investmentRepository) Update(investment *model.Investment) error {
	return r.db.Save(investment).Error
}

func (r *investmentRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&model.Investment{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *investmentRepository) Summary() (*model.InvestmentSummary, error) {
	summary := &model.InvestmentSummary{ByType: []model.TypeSummary{}}

	err := r.db.Model(&model.Investment{}).
		Select("type, COUNT(*) AS count, SUM(amount) AS total_amount, AVG(COALESCE(expected_return, 0)) AS average_return").
		Group("type").
		Order("type").
		Scan(&summary.ByType).Error
	if err != nil {
		return nil, err
	}

	for _, t := range summary.ByType {
		summary.TotalInvestments += t.Count
		summary.TotalAmount += t.TotalAmount
	}
	return summary, nil
}
