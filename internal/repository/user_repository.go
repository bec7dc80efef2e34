package repository

import (
	"context"
	"errors"

	"github.com/bagdasarian/users-service/internal/domain"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailConflict - вставка отклонена уникальным индексом по email
	ErrEmailConflict = errors.New("email already exists")
	// ErrValueTooLong - значение не помещается в колонку
	ErrValueTooLong = errors.New("value too long")
)

type UserRepository interface {
	// Create вставляет пользователя и заполняет ID, Active и CreatedAt.
	// Возвращает nil, ErrEmailConflict, ErrValueTooLong или ошибку БД.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
