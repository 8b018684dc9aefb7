package service

import (
	"sort"
	"strings"
	"time"

	"investment-service/internal/model"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users  map[uint]*model.User
	invs   map[uint]*model.Investment
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: map[uint]*model.User{},
		invs:  map[uint]*model.Investment{},
	}
}

func (r *fakeUserRepo) List() ([]model.User, error) {
	ids := make([]int, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *r.users[uint(id)])
	}
	return users, nil
}

func (r *fakeUserRepo) GetByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetInvestments(userID uint) ([]model.Investment, error) {
	var investments []model.Investment
	for _, inv := range r.invs {
		if inv.UserID == userID {
			investments = append(investments, *inv)
		}
	}
	return investments, nil
}

func (r *fakeUserRepo) Exists(id uint) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) EmailExists(email string, excludeUserID uint) (bool, error) {
	for _, user := range r.users {
		if user.Email == email && user.ID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id uint) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	for invID, inv := range r.invs {
		if inv.UserID == id {
			delete(r.invs, invID)
		}
	}
	return true, nil
}

type fakeInvestmentRepo struct {
	users  *fakeUserRepo
	nextID uint
}

func newFakeInvestmentRepo(users *fakeUserRepo) *fakeInvestmentRepo {
	return &fakeInvestmentRepo{users: users}
}

func (r *fakeInvestmentRepo) List() ([]model.Investment, error) {
	ids := make([]int, 0, len(r.users.invs))
	for id := range r.users.invs {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	investments := make([]model.Investment, 0, len(ids))
	for _, id := range ids {
		investments = append(investments, *r.users.invs[uint(id)])
	}
	return investments, nil
}

func (r *fakeInvestmentRepo) GetByID(id uint) (*model.Investment, error) {
	inv, ok := r.users.invs[id]
	if !ok {
		return nil, nil
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInvestmentRepo) GetByType(investmentType string) ([]model.Investment, error) {
	var investments []model.Investment
	for _, inv := range r.users.invs {
		if strings.EqualFold(inv.Type, investmentType) {
			investments = append(investments, *inv)
		}
	}
	return investments, nil
}

func (r *fakeInvestmentRepo) GetByUser(userID uint) ([]model.Investment, error) {
	return r.users.GetInvestments(userID)
}

func (r *fakeInvestmentRepo) Create(investment *model.Investment) error {
	r.nextID++
	investment.ID = r.nextID
	investment.InvestmentDate = time.Now().UTC()
	copied := *investment
	r.users.invs[investment.ID] = &copied
	return nil
}

func (r *fakeInvestmentRepo) Update(investment *model.Investment) error {
	copied := *investment
	r.users.invs[investment.ID] = &copied
	return nil
}

func (r *fakeInvestmentRepo) Delete(id uint) (bool, error) {
	if _, ok := r.users.invs[id]; !ok {
		return false, nil
	}
	delete(r.users.invs, id)
	return true, nil
}

func (r *fakeInvestmentRepo) Summary() (*model.InvestmentSummary, error) {
	byType := map[string]*model.TypeSummary{}
	summary := &model.InvestmentSummary{ByType: []model.TypeSummary{}}
	for _, inv := range r.users.invs {
		t, ok := byType[inv.Type]
		if !ok {
			t = &model.TypeSummary{Type: inv.Type}
			byType[inv.Type] = t
		}
		t.Count++
		t.TotalAmount += inv.Amount
		if inv.ExpectedReturn != nil {
			t.AverageReturn += *inv.ExpectedReturn
		}
		summary.TotalInvestments++
		summary.TotalAmount += inv.Amount
	}
	for _, t := range byType {
		t.AverageReturn /= float64(t.Count)
		summary.ByType = append(summary.ByType, *t)
	}
	return summary, nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
