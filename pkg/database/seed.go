package database

import (
	"time"

	"gorm.io/gorm"

	"investment-service/internal/model"
)

func ptr[T any](v T) *T { return &v }

// SeedDemoData inserts two demo users with a handful of investments
// into an empty database. It is a convenience for trying the API out
// and is only run when DB_SEED is set.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	users := []model.User{
		{
			Name:  "Maria Silva",
			Email: "maria.silva@example.com",
			Phone: ptr("+55 11 91234-5678"),
			Investments: []model.Investment{
				{
					Name:           "Tesouro Selic 2029",
					Type:           "Treasury",
					Amount:         5000,
					InvestmentDate: now,
					ExpectedReturn: ptr(10.5),
				},
				{
					Name:           "PETR4",
					Type:           "Stock",
					Amount:         2500,
					InvestmentDate: now,
				},
			},
		},
		{
			Name:  "Joao Santos",
			Email: "joao.santos@example.com",
			Investments: []model.Investment{
				{
					Name:           "CDB Banco XYZ",
					Type:           "CD",
					Amount:         10000,
					InvestmentDate: now,
					ExpectedReturn: ptr(12.0),
					Description:    ptr("Matures in 2027"),
				},
			},
		},
	}

	return db.Create(&users).Error
}
