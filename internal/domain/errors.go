package domain

import "fmt"

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

var (
	// ErrGroupExists - группа с таким именем уже существует
	ErrGroupExists = &DomainError{
		Code:    "GROUP_EXISTS",
		Message: "group name already exists",
	}

	// ErrMembershipExists - пользователь уже состоит в группе
	ErrMembershipExists = &DomainError{
		Code:    "MEMBERSHIP_EXISTS",
		Message: "user is already a member of this group",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrBadRequest - некорректный запрос
	ErrBadRequest = &DomainError{
		Code:    "BAD_REQUEST",
		Message: "bad request",
	}

	// ErrUnauthorized - пользователь не аутентифицирован
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "authentication required",
	}

	// ErrForbidden - недостаточно прав
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "you don't have permissions to do that",
	}

	// ErrFeatureDisabled - премиум-функция не включена
	ErrFeatureDisabled = &DomainError{
		Code:    "FEATURE_DISABLED",
		Message: "group managers are not available",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST с описанием
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    "BAD_REQUEST",
		Message: message,
	}
}
