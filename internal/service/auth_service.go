package service

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"investment-service/internal/model"
	"investment-service/internal/repository"
)

// AuthService implements the demonstration login flow. Tokens are a
// reversible base64 encoding of "userId:email:unixSeconds" with no
// signature; they are trivially forgeable and carry no expiry. No
// password is stored or verified.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login accepts any non-empty password for a known email. Failures are
// result-coded, never errors.
func (s *AuthService) Login(email, password string) (*model.LoginResult, error) {
	if strings.TrimSpace(email) == "" {
		return &model.LoginResult{Success: false, Message: "email is required"}, nil
	}
	if strings.TrimSpace(password) == "" {
		return &model.LoginResult{Success: false, Message: "password is required"}, nil
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &model.LoginResult{Success: false, Message: "invalid email or password"}, nil
	}

	payload := fmt.Sprintf("%d:%s:%d", user.ID, user.Email, time.Now().Unix())
	token := base64.StdEncoding.EncodeToString([]byte(payload))

	return &model.LoginResult{
		Success: true,
		Message: "login successful",
		Token:   token,
		User:    user,
	}, nil
}

// ValidateToken decodes a login token and resolves the user it names.
// Malformed input yields an invalid result, never a panic or an error.
func (s *AuthService) ValidateToken(token string) (*model.TokenValidation, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return &model.TokenValidation{Valid: false, Reason: "invalid token"}, nil
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != 3 {
		return &model.TokenValidation{Valid: false, Reason: "invalid token"}, nil
	}

	userID, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return &model.TokenValidation{Valid: false, Reason: "invalid token"}, nil
	}

	user, err := s.users.GetByID(uint(userID))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &model.TokenValidation{Valid: false, Reason: "user not found"}, nil
	}

	info := user.Info()
	return &model.TokenValidation{Valid: true, User: &info}, nil
}

// TestUsers lists id/name/email for every user so a caller can pick a
// valid login email while trying the API out.
func (s *AuthService) TestUsers() ([]model.UserInfo, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	infos := make([]model.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, users[i].Info())
	}
	return infos, nil
}
