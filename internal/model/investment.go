package model

import (
	"time"
)

// Investment represents a single position held by a user. Type is a
// free-form category ("Stock", "Treasury", "CD", ...).
type Investment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"type:varchar(100);not null"`
	Type           string    `json:"type" gorm:"type:varchar(50);not null"`
	Amount         float64   `json:"amount" gorm:"not null"`
	ExpectedReturn *float64  `json:"expected_return,omitempty"`
	InvestmentDate time.Time `json:"investment_date"`
	Description    *string   `json:"description,omitempty" gorm:"type:varchar(500)"`
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	User           *User     `json:"user,omitempty"`
}

// TypeSummary aggregates the investments sharing one type. A missing
// expected return counts as 0 in the average.
type TypeSummary struct {
	Type          string  `json:"type"`
	Count         int64   `json:"count"`
	TotalAmount   float64 `json:"total_amount"`
	AverageReturn float64 `json:"average_return"`
}

// InvestmentSummary is the portfolio-wide aggregation.
type InvestmentSummary struct {
	TotalInvestments int64         `json:"total_investments"`
	TotalAmount      float64       `json:"total_amount"`
	ByType           []TypeSummary `json:"by_type"`
}
