package domain

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeInvalidPayload = "INVALID_PAYLOAD"
	CodeEmailExists    = "EMAIL_EXISTS"
	CodeNotFound       = "NOT_FOUND"
)

var (
	// ErrInvalidPayload - тело запроса пустое или без обязательных полей
	ErrInvalidPayload = &DomainError{
		Code:    CodeInvalidPayload,
		Message: "Invalid payload.",
	}

	// ErrDuplicateEmail - пользователь с таким email уже существует
	ErrDuplicateEmail = &DomainError{
		Code:    CodeEmailExists,
		Message: "Sorry. That email already exists.",
	}

	// ErrNotFound - пользователь не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "User does not exist",
	}
)
