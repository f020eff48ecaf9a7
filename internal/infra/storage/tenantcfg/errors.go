package tenantcfg

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация арендатора не найдена
	ErrConfigNotFound = errors.New("tenantcfg.repository: tenant config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tenantcfg.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tenantcfg.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tenantcfg.repository: failed to scan row")

	// ErrEncodeConfig возвращается при ошибке сериализации JSONB полей конфигурации
	ErrEncodeConfig = errors.New("tenantcfg.repository: failed to encode config")

	// ErrDecodeConfig возвращается при ошибке десериализации JSONB полей конфигурации
	ErrDecodeConfig = errors.New("tenantcfg.repository: failed to decode config")
)
