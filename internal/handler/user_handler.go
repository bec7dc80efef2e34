package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bagdasarian/users-service/internal/domain"
	"github.com/bagdasarian/users-service/internal/metrics"
)

func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{
		Status:  statusSuccess,
		Message: "pong!",
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ListUsersResponse{
		Status: statusSuccess,
		Data:   UsersData{Users: domainUsersToHTTP(users)},
	})
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := decodeJSON(r.Body, &req); err != nil {
		h.handleError(w, r, domain.ErrInvalidPayload)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, r, domain.ErrInvalidPayload)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.DuplicateEmailTotal.Inc()
		}
		h.handleError(w, r, err)
		return
	}
	metrics.UsersCreatedTotal.Inc()

	h.logger.InfoContext(r.Context(), "user created",
		"request_id", RequestIDFromContext(r.Context()),
		"user_id", user.ID,
	)

	writeJSON(w, http.StatusCreated, MessageResponse{
		Status:  statusSuccess,
		Message: fmt.Sprintf("%s was added!", user.Email),
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	// нечисловой id означает, что такого пользователя нет
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.handleError(w, r, domain.ErrNotFound)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GetUserResponse{
		Status: statusSuccess,
		Data:   domainUserToHTTP(user),
	})
}
