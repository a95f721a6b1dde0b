package db

import (
	"context"
	"errors"

	"github.com/coinsentry/coinsentry/internal/domain"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Get returns the single local user. The daemon is single-user; the first
// row wins.
func (r *UserRepository) Get(ctx context.Context) (*domain.User, error) {
	var model userModel
	if err := r.db.WithContext(ctx).Order("created_at").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.User{
		ID:        model.ID,
		Email:     model.Email,
		Tier:      domain.SubscriptionTier(model.Tier),
		CreatedAt: model.CreatedAt,
	}, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	model := userModel{
		ID:        user.ID,
		Email:     user.Email,
		Tier:      string(user.Tier),
		CreatedAt: user.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&model).Error
}
