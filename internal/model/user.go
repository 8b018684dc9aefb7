package model

import (
	"time"
)

// User owns zero or more investments. Deleting a user deletes its
// investments (see repository.UserRepository.Delete).
type User struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"type:varchar(100);not null"`
	Email       string       `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Phone       *string      `json:"phone,omitempty" gorm:"type:varchar(20)"`
	CreatedAt   time.Time    `json:"created_at"`
	Investments []Investment `json:"investments" gorm:"constraint:OnDelete:CASCADE"`
}

// UserInfo is the minimal projection returned by token validation and
// the test-users listing.
type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Info strips a user down to its public identity fields.
func (u *User) Info() UserInfo {
	return UserInfo{ID: u.ID, Name: u.Name, Email: u.Email}
}
