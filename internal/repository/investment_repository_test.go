package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment-service/internal/model"
)

func TestInvestmentRepositoryCreateStampsDate(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	investments := NewInvestmentRepository(db)
	alice := createUser(t, users, "Alice", "alice@example.com")

	created := createInvestment(t, investments, testInvestment("PETR4", "Stock", 1000, alice.ID))
	assert.Positive(t, created.ID)
	assert.False(t, created.InvestmentDate.IsZero())
}

func TestInvestmentRepositoryGetPreloadsUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	investments := NewInvestmentRepository(db)
	alice := createUser(t, users, "Alice", "alice@example.com")
	created := createInvestment(t, investments, testInvestment("PETR4", "Stock", 1000, alice.ID))

	got, err := investments.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice@example.com", got.User.Email)

	missing, err := investments.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInvestmentRepositoryGetByTypeIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	investments := NewInvestmentRepository(db)
	alice := createUser(t, users, "Alice", "alice@example.com")

	createInvestment(t, investments, testInvestment("PETR4", "Stock", 1000, alice.ID))
	createInvestment(t, investments, testInvestment("VALE3", "stock", 2000, alice.ID))
	createInvestment(t, investments, testInvestment("Selic", "Treasury", 3000, alice.ID))

	matched, err := investments.GetByType("STOCK")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	matched, err = investments.GetByType("cd")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestInvestmentRepositoryUpdate(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	investments := NewInvestmentRepository(db)
	alice := createUser(t, users, "Alice", "alice@example.com")
	created := createInvestment(t, investments, testInvestment("PETR4", "Stock", 1000, alice.ID))

	created.Amount = 1500
	created.Description = strPtr("topped up")
	require.NoError(t, investments.Update(created))

	got, err := investments.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(1500), got.Amount)
	require.NotNil(t, got.Description)
	assert.Equal(t, "topped up", *got.Description)
}

func TestInvestmentRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	investments := NewInvestmentRepository(db)
	alice := createUser(t, users, "Alice", "alice@example.com")
	created := createInvestment(t, investments, testInvestment("PETR4", "Stock", 1000, alice.ID))

	deleted, err := investments.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = investments.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestInvestmentRepositorySummary(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	investments := NewInvestmentRepository(db)
	alice := createUser(t, users, "Alice", "alice@example.com")

	withReturn := func(in model.Investment, expectedReturn float64) model.Investment {
		in.ExpectedReturn = floatPtr(expectedReturn)
		return in
	}
	createInvestment(t, investments, withReturn(testInvestment("PETR4", "Stock", 1000, alice.ID), 8))
	createInvestment(t, investments, testInvestment("VALE3", "Stock", 3000, alice.ID))
	createInvestment(t, investments, withReturn(testInvestment("Selic", "Treasury", 5000, alice.ID), 10))

	summary, err := investments.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalInvestments)
	assert.InDelta(t, 9000, summary.TotalAmount, 1e-9)

	byType := map[string]model.TypeSummary{}
	for _, ts := range summary.ByType {
		byType[ts.Type] = ts
	}
	require.Len(t, byType, 2)
	assert.Equal(t, int64(2), byType["Stock"].Count)
	assert.InDelta(t, 4000, byType["Stock"].TotalAmount, 1e-9)
	// NULL expected returns count as zero in the average.
	assert.InDelta(t, 4, byType["Stock"].AverageReturn, 1e-9)
	assert.Equal(t, int64(1), byType["Treasury"].Count)
	assert.InDelta(t, 10, byType["Treasury"].AverageReturn, 1e-9)
}

func TestInvestmentRepositorySummaryEmpty(t *testing.T) {
	db := newTestDB(t)
	investments := NewInvestmentRepository(db)

	summary, err := investments.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalInvestments)
	assert.Zero(t, summary.TotalAmount)
	assert.Empty(t, summary.ByType)
}
