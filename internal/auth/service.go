package auth

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"ci-request-api/internal/util"
)

type AuthService struct {
	DB *gorm.DB
}

func (s *AuthService) CreateUser(user User, password string) (*User, error) {
	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	user.IsActive = true

	if err := s.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") || strings.Contains(err.Error(), "unique constraint") {
			return nil, errors.New("An account with this username already exists.")
		}
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) GetUser(username string) (*User, error) {
	var user User
	result := s.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) GetUserByID(id uint) (*User, error) {
	var user User
	result := s.DB.Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}
