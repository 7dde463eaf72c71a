package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"lotmarket/pkg/errcodes"
)

// AppError представляет ошибку слоя хранения/инфраструктуры с кодом.
// На границе сервиса она переводится в failure-ошибку нужного вида.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// HasCode проверяет, что в цепочке есть AppError с одним из кодов.
func HasCode(err error, codes ...failure.ErrorCode) bool {
	code, ok := GetCode(err)
	if !ok {
		return false
	}

	for _, c := range codes {
		if c == code {
			return true
		}
	}

	return false
}

// NotFound переводит "не найдено" из хранилища в failure-ошибку для клиента.
// Прочие ошибки возвращаются как есть.
func NotFound(err error, code failure.ErrorCode, description string) error {
	if !HasCode(err, code, errcodes.NotFound) {
		return err
	}

	return failure.NewNotFoundError(
		err.Error(),
		failure.WithCode(code),
		failure.WithDescription(description),
	)
}
