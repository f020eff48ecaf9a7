package tenantcfg

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	"github.com/m04kA/RBP-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RBP-ReservationService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (*sql.DB, *sql.Tx и их обёртки)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий конфигурации бронирования арендаторов.
// Составные поля (рабочие часы, слоты, заблокированные даты) хранятся в JSONB.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenantID получает конфигурацию бронирования арендатора
func (r *Repository) GetByTenantID(ctx context.Context, tenantID int64) (*domain.TenantReservationConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"tenant_id",
		"opening_hours",
		"slots",
		"capacity",
		"blocked_dates",
		"lead_hours",
		"max_days",
		"auto_confirm",
		"reservations_enabled",
		"created_at",
		"updated_at",
	).
		From("tenant_reservation_configs").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantID - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.TenantReservationConfig
	var openingHoursRaw, slotsRaw, blockedDatesRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.TenantID,
		&openingHoursRaw,
		&slotsRaw,
		&cfg.Capacity,
		&blockedDatesRaw,
		&cfg.LeadHours,
		&cfg.MaxDays,
		&cfg.AutoConfirm,
		&cfg.ReservationsEnabled,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantID - scan config: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(openingHoursRaw, &cfg.OpeningHours); err != nil {
		return nil, fmt.Errorf("%w: GetByTenantID - opening_hours: %v", ErrDecodeConfig, err)
	}
	if err := json.Unmarshal(slotsRaw, &cfg.Slots); err != nil {
		return nil, fmt.Errorf("%w: GetByTenantID - slots: %v", ErrDecodeConfig, err)
	}
	if err := json.Unmarshal(blockedDatesRaw, &cfg.BlockedDates); err != nil {
		return nil, fmt.Errorf("%w: GetByTenantID - blocked_dates: %v", ErrDecodeConfig, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Upsert создает или полностью замещает конфигурацию арендатора
func (r *Repository) Upsert(ctx context.Context, cfg *domain.TenantReservationConfig) (*domain.TenantReservationConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	openingHoursRaw, err := json.Marshal(orEmptyHours(cfg.OpeningHours))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - opening_hours: %v", ErrEncodeConfig, err)
	}
	slotsRaw, err := json.Marshal(orEmptySlots(cfg.Slots))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - slots: %v", ErrEncodeConfig, err)
	}
	blockedDatesRaw, err := json.Marshal(orEmptyDates(cfg.BlockedDates))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - blocked_dates: %v", ErrEncodeConfig, err)
	}

	query, args, err := psqlbuilder.Insert("tenant_reservation_configs").
		Columns(
			"tenant_id",
			"opening_hours",
			"slots",
			"capacity",
			"blocked_dates",
			"lead_hours",
			"max_days",
			"auto_confirm",
			"reservations_enabled",
		).
		Values(
			cfg.TenantID,
			openingHoursRaw,
			slotsRaw,
			cfg.Capacity,
			blockedDatesRaw,
			cfg.LeadHours,
			cfg.MaxDays,
			cfg.AutoConfirm,
			cfg.ReservationsEnabled,
		).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			opening_hours = EXCLUDED.opening_hours,
			slots = EXCLUDED.slots,
			capacity = EXCLUDED.capacity,
			blocked_dates = EXCLUDED.blocked_dates,
			lead_hours = EXCLUDED.lead_hours,
			max_days = EXCLUDED.max_days,
			auto_confirm = EXCLUDED.auto_confirm,
			reservations_enabled = EXCLUDED.reservations_enabled,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// orEmptyHours заменяет nil на пустой объект, чтобы в JSONB не попадал NULL
func orEmptyHours(h domain.WeeklyHours) domain.WeeklyHours {
	if h == nil {
		return domain.WeeklyHours{}
	}
	return h
}

func orEmptySlots(s []domain.ReservationSlot) []domain.ReservationSlot {
	if s == nil {
		return []domain.ReservationSlot{}
	}
	return s
}

func orEmptyDates(d []string) []string {
	if d == nil {
		return []string{}
	}
	return d
}
