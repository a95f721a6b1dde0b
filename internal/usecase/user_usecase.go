package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/coinsentry/coinsentry/internal/domain"
	"github.com/google/uuid"
)

type UserUsecase struct {
	users domain.UserRepository
}

func NewUserUsecase(users domain.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// LoadOrCreate returns the local user, creating a fresh free-tier one on
// first run.
func (u *UserUsecase) LoadOrCreate(ctx context.Context) (*domain.User, error) {
	user, err := u.users.Get(ctx)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	newUser := &domain.User{
		ID:        uuid.NewString(),
		Tier:      domain.TierFree,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.users.Create(ctx, newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}
