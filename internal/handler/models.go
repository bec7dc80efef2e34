package handler

const (
	statusSuccess = "success"
	statusFail    = "fail"
)

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

type UserSummaryResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

type UsersData struct {
	Users []UserSummaryResponse `json:"users"`
}

type ListUsersResponse struct {
	Status string    `json:"status"`
	Data   UsersData `json:"data"`
}

type GetUserResponse struct {
	Status string       `json:"status"`
	Data   UserResponse `json:"data"`
}
