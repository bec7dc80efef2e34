package handler

import "github.com/bagdasarian/users-service/internal/domain"

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Active:   user.Active,
	}
}

func domainUserToSummary(user *domain.User) UserSummaryResponse {
	return UserSummaryResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func domainUsersToHTTP(users []*domain.User) []UserSummaryResponse {
	result := make([]UserSummaryResponse, 0, len(users))
	for _, user := range users {
		result = append(result, domainUserToSummary(user))
	}
	return result
}
