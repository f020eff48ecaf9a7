package tenantconfig

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	tenantcfgRepo "github.com/m04kA/RBP-ReservationService/internal/infra/storage/tenantcfg"
	"github.com/m04kA/RBP-ReservationService/internal/service/tenantconfig/models"
	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

// Service сервис конфигурации арендаторов.
// Читает конфигурацию через кеш (если настроен) и инвалидирует его при обновлении.
// Также выступает провайдером конфигурации для usecase-ов движка.
type Service struct {
	configRepo ConfigRepository
	cache      ConfigCache
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации.
// cache может быть nil - тогда чтение идёт напрямую из репозитория.
func NewService(configRepo ConfigRepository, cache ConfigCache, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		cache:      cache,
		logger:     logger,
	}
}

// GetConfig возвращает доменную конфигурацию арендатора (read-through кеш).
// Ошибка отсутствия конфигурации пробрасывается как tenantcfgRepo.ErrConfigNotFound,
// чтобы usecase-ы могли отличить неизвестного арендатора от сбоя хранилища.
func (s *Service) GetConfig(ctx context.Context, tenantID int64) (*domain.TenantReservationConfig, error) {
	if s.cache != nil {
		if cfg, err := s.cache.Get(ctx, tenantID); err == nil {
			return cfg, nil
		}
		// Промах или недоступность кеша - идём в репозиторий
	}

	cfg, err := s.configRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cfg); err != nil {
			// Кеш не критичен для корректности
			s.logger.Warn("GetConfig: failed to cache config for tenant=%d: %v", tenantID, err)
		}
	}

	return cfg, nil
}

// GetByTenantID возвращает конфигурацию арендатора для API
func (s *Service) GetByTenantID(ctx context.Context, tenantID int64) (*models.TenantConfigResponse, error) {
	s.logger.Info("GetByTenantID: fetching config for tenant=%d", tenantID)

	cfg, err := s.GetConfig(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantcfgRepo.ErrConfigNotFound) {
			s.logger.Warn("GetByTenantID: config for tenant=%d not found", tenantID)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("GetByTenantID: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetByTenantID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Update полностью замещает конфигурацию арендатора и инвалидирует кеш
func (s *Service) Update(ctx context.Context, tenantID int64, req *models.UpdateTenantConfigRequest) (*models.TenantConfigResponse, error) {
	s.logger.Info("Update: updating config for tenant=%d", tenantID)

	if tenantID <= 0 {
		return nil, fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}
	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for tenant=%d: %v", tenantID, err)
		return nil, err
	}

	updated, err := s.configRepo.Upsert(ctx, req.ToDomainConfig(tenantID))
	if err != nil {
		s.logger.Error("Update: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, tenantID); err != nil {
			s.logger.Warn("Update: failed to invalidate cache for tenant=%d: %v", tenantID, err)
		}
	}

	s.logger.Info("Update: successfully updated config for tenant=%d", tenantID)
	return models.FromDomainConfig(updated), nil
}

// validateUpdateRequest валидирует запрос на обновление конфигурации
func validateUpdateRequest(req *models.UpdateTenantConfigRequest) error {
	for day, ranges := range req.OpeningHours {
		if !domain.IsValidWeekday(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
		for _, tr := range ranges {
			if err := validateTimePair(tr.Open, tr.Close); err != nil {
				return fmt.Errorf("%w: openingHours[%s]: %v", ErrInvalidInput, day, err)
			}
		}
	}

	for i, slot := range req.Slots {
		if err := validateTimePair(slot.From, slot.To); err != nil {
			return fmt.Errorf("%w: slots[%d]: %v", ErrInvalidInput, i, err)
		}
		if slot.Capacity != nil && *slot.Capacity <= 0 {
			return fmt.Errorf("%w: slots[%d]: capacity must be positive", ErrInvalidInput, i)
		}
	}

	if req.Capacity != nil && *req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	for _, date := range req.BlockedDates {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: invalid blocked date %q", ErrInvalidInput, date)
		}
	}

	if req.LeadHours < domain.MinLeadHours || req.LeadHours > domain.MaxLeadHours {
		return fmt.Errorf("%w: leadHours must be between %d and %d",
			ErrInvalidInput, domain.MinLeadHours, domain.MaxLeadHours)
	}

	if req.MaxDays < domain.MinAdvanceDays || req.MaxDays > domain.MaxAdvanceDays {
		return fmt.Errorf("%w: maxDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceDays, domain.MaxAdvanceDays)
	}

	return nil
}

// validateTimePair проверяет пару HH:MM строк и порядок границ
func validateTimePair(from, to string) error {
	start, err := types.NewTimeStringFromString(from)
	if err != nil {
		return err
	}
	end, err := types.NewTimeStringFromString(to)
	if err != nil {
		return err
	}
	if !end.IsAfter(start) {
		return fmt.Errorf("end %q must be after start %q", to, from)
	}
	return nil
}
