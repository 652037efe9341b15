package services

import (
	"errors"
	"time"

	"quizapi/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreateUser looks a user up by email and inserts one when absent. The
// returned bool is true only when a new row was created, so calling this twice
// with the same email yields the same user id.
func (s *UserService) GetOrCreateUser(email string) (*models.User, bool, error) {
	if email == "" {
		return nil, false, newValidationError("email is required")
	}

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user = models.User{
		Email:     email,
		CreatedAt: time.Now().Format(timestampLayout),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, false, err
	}

	return &user, true, nil
}
