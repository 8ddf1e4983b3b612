package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверные учетные данные, неверный токен).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrExpiredToken используется, когда срок действия токена истек.
	ErrExpiredToken = errors.New("token is expired")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется при нарушении уникальности (дубликат имени пользователя или email).
	ErrConflict = errors.New("resource already exists")
)
