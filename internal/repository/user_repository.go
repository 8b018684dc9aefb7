package repository

import (
	"errors"

	"gorm.io/gorm"

	"investment-service/internal/model"
)

// UserRepository translates user domain calls into storage queries. It
// owns no business rules.
type UserRepository interface {
	List() ([]model.User, error)
	GetByID(id uint) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetInvestments(userID uint) ([]model.Investment, error)
	Exists(id uint) (bool, error)
	// EmailExists reports whether email is taken by a user other than
	// excludeUserID. Pass 0 to match against every user.
	EmailExists(email string, excludeUserID uint) (bool, error)
	Create(user *model.User) error
	Update(user *model.User) error
	// Delete removes the user and all of its investments, reporting
	// whether a user row was actually deleted.
	Delete(id uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a GORM-backed UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List() ([]model.User, error) {
	var users []model.User
	if err := r.db.Preload("Investments").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Investments").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetInvestments(userID uint) ([]model.Investment, error) {
	var investments []model.Investment
	if err := r.db.Where("user_id = ?", userID).Find(&investments).Error; err != nil {
		return nil, err
	}
	return investments, nil
}

func (r *userRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) EmailExists(email string, excludeUserID uint) (bool, error) {
	query := r.db.Model(&model.User{}).Where("email = ?", email)
	if excludeUserID != 0 {
		query = query.Where("id != ?", excludeUserID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Investment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}
