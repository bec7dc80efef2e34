package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/users-service/internal/domain"
	"github.com/bagdasarian/users-service/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) CreateUser(ctx context.Context, username, email string) (*domain.User, error) {
	// Быстрая проверка; окончательное решение принимает уникальный индекс при вставке
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		Username: username,
		Email:    email,
	}

	err = s.userRepo.Create(ctx, user)
	switch {
	case errors.Is(err, repository.ErrEmailConflict):
		return nil, domain.ErrDuplicateEmail
	case errors.Is(err, repository.ErrValueTooLong):
		return nil, domain.ErrInvalidPayload
	case err != nil:
		return nil, err
	}

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return user, nil
}
