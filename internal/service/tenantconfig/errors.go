package tenantconfig

import "errors"

var (
	// ErrTenantNotFound возвращается, когда конфигурация арендатора не найдена
	ErrTenantNotFound = errors.New("tenant config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
