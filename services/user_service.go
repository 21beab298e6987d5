package services

import (
	"context"
	"time"

	"plantnet/models"
)

type UserService struct {
	users UserStore
	now   func() time.Time
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users, now: time.Now}
}

// Upsert returns the stored user untouched when the email is known.
// Otherwise it creates a customer and reports created=true.
func (s *UserService) Upsert(ctx context.Context, email string, req models.UpsertUserRequest) (*models.User, bool, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, false, models.NewInternalError("failed to look up user", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	user := &models.User{
		Name:      req.Name,
		Email:     email,
		Image:     req.Image,
		Role:      models.DefaultUserRole,
		Timestamp: s.now().UnixMilli(),
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, false, models.NewInternalError("failed to save user", err)
	}
	return user, true, nil
}
