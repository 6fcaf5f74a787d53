package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/store"
	"github.com/MKhiriev/task-tracker/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the public view of the user.
func (s *userService) GetProfile(ctx context.Context, userID int64) (models.PublicUser, error) {
	if userID <= 0 {
		return models.PublicUser{}, ErrInvalidUserID
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user.Public(), nil
}
