package handler

import (
	"errors"
	"net/http"

	"github.com/bagdasarian/users-service/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), MessageResponse{
			Status:  statusFail,
			Message: domainErr.Message,
		})
		return
	}

	h.logger.ErrorContext(r.Context(), "request failed",
		"request_id", RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)

	writeJSON(w, http.StatusInternalServerError, MessageResponse{
		Status:  statusFail,
		Message: "internal server error",
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeInvalidPayload, domain.CodeEmailExists:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
