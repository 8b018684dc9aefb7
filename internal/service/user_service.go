package service

import (
	"net/mail"
	"strings"

	"investment-service/internal/apperr"
	"investment-service/internal/model"
	"investment-service/internal/repository"
)

// UserInput carries the mutable user fields accepted on create and
// update. ID and creation timestamp are always server-assigned.
type UserInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// UserService enforces user validation and orchestrates repository
// calls.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns every user with its investments attached.
func (s *UserService) List() ([]model.User, error) {
	return s.users.List()
}

// Get returns the user with its investments, or nil when absent.
func (s *UserService) Get(id uint) (*model.User, error) {
	return s.users.GetByID(id)
}

// GetInvestments returns the user's investments, failing with NotFound
// when the user does not exist.
func (s *UserService) GetInvestments(id uint) ([]model.Investment, error) {
	exists, err := s.users.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user not found")
	}
	return s.users.GetInvestments(id)
}

// Create persists a new user with a server-assigned id and creation
// timestamp.
func (s *UserService) Create(in UserInput) (*model.User, error) {
	if err := validateUserInput(in); err != nil {
		return nil, err
	}

	taken, err := s.users.EmailExists(in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("email is already in use")
	}

	user := &model.User{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update replaces name, email and phone. It returns nil when the user
// does not exist and Conflict when the email belongs to someone else.
func (s *UserService) Update(id uint, in UserInput) (*model.User, error) {
	existing, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if err := validateUserInput(in); err != nil {
		return nil, err
	}

	taken, err := s.users.EmailExists(in.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("email is already in use by another user")
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Phone = in.Phone
	if err := s.users.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the user and, by cascade, its investments. It reports
// whether a user row was deleted.
func (s *UserService) Delete(id uint) (bool, error) {
	return s.users.Delete(id)
}

func validateUserInput(in UserInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Validation("name is required")
	}
	if len(in.Name) > 100 {
		return apperr.Validation("name must be at most 100 characters")
	}
	if strings.TrimSpace(in.Email) == "" {
		return apperr.Validation("email is required")
	}
	if len(in.Email) > 100 {
		return apperr.Validation("email must be at most 100 characters")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return apperr.Validation("email is not a valid address")
	}
	if in.Phone != nil && len(*in.Phone) > 20 {
		return apperr.Validation("phone must be at most 20 characters")
	}
	return nil
}
