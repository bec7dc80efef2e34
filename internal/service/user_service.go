package service

import (
	"context"

	"github.com/bagdasarian/users-service/internal/domain"
)

type UserService interface {
	// ListUsers возвращает всех пользователей в порядке создания
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// CreateUser создает пользователя с уникальным email
	CreateUser(ctx context.Context, username, email string) (*domain.User, error)

	// GetUser получает пользователя по id
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}
