package service

import "errors"

var (
	// ErrNotFound is returned when a row addressed by id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrPageNotFound is wrapped with the page kind, e.g. "fishing page not found".
	ErrPageNotFound = errors.New("page not found")
	// ErrReorderUnsupported is returned for collections without an order column.
	ErrReorderUnsupported = errors.New("collection cannot be reordered")
	// ErrInvalidCredentials 表示用户名或密码错误。
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// FieldError reports a field that failed service-level validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Message
}

func invalidField(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
