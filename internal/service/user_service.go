package service

import (
	"errors"
	"strings"

	"github.com/potatolake/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService 校验后台管理员凭据。
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Authenticate returns the user when the bcrypt hash matches.
func (s *UserService) Authenticate(username, password string) (*db.User, error) {
	name := strings.TrimSpace(username)
	if name == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	var user db.User
	if err := s.db.Where("username = ?", name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
