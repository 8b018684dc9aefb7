package repository

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"investment-service/internal/model"
)

// newTestDB opens a per-test in-memory sqlite database. The database
// is named after the test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Investment{}))
	return db
}

func createUser(t *testing.T, users UserRepository, name, email string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email}
	require.NoError(t, users.Create(user))
	return user
}

func createInvestment(t *testing.T, investments InvestmentRepository, in model.Investment) *model.Investment {
	t.Helper()
	require.NoError(t, investments.Create(&in))
	return &in
}

func testInvestment(name, investmentType string, amount float64, userID uint) model.Investment {
	return model.Investment{Name: name, Type: investmentType, Amount: amount, UserID: userID}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
