package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	"github.com/m04kA/RBP-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RBP-ReservationService/pkg/psqlbuilder"
)

// reservationColumns полный список колонок таблицы reservations
var reservationColumns = []string{
	"id",
	"tenant_id",
	"guest_name",
	"guest_phone",
	"guest_email",
	"party_size",
	"reserved_at",
	"tz_offset_minutes",
	"notes",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями столиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование. ID генерируется на стороне сервиса (UUID v4).
// Если в контексте передана активная транзакция, использует её - это обязательно
// для пути создания брони, где подсчёт занятости и вставка должны идти
// в одной сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, rsv *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rsv.ID == uuid.Nil {
		rsv.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"tenant_id",
			"guest_name",
			"guest_phone",
			"guest_email",
			"party_size",
			"reserved_at",
			"tz_offset_minutes",
			"notes",
			"status",
		).
		Values(
			rsv.ID,
			rsv.TenantID,
			rsv.Name,
			rsv.Phone,
			rsv.Email,
			rsv.PartySize,
			rsv.ReservedAt,
			rsv.TZOffsetMinutes,
			rsv.Notes,
			rsv.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rsv.CreatedAt = createdAt.Time
	rsv.UpdatedAt = updatedAt.Time

	return rsv, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rsv, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return rsv, nil
}

// ListByTenant получает бронирования арендатора с фильтрацией.
// Результат всегда упорядочен по reserved_at по возрастанию.
//
// Примеры использования:
//
//  1. Все актуальные бронирования арендатора:
//     filter := domain.TenantReservationsFilter{TenantID: 42}
//
//  2. Кандидаты для подсчёта занятости окна (UTC диапазон, покрывающий локальную дату):
//     filter := domain.TenantReservationsFilter{TenantID: 42, FromUTC: &from, ToUTC: &to}
//
//  3. Включая отменённые (административный список):
//     filter := domain.TenantReservationsFilter{TenantID: 42, IncludeCancelled: true}
func (r *Repository) ListByTenant(ctx context.Context, filter domain.TenantReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"tenant_id": filter.TenantID})

	// Фильтрация по диапазону reserved_at (нижняя граница включается, верхняя - нет)
	if filter.FromUTC != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"reserved_at": *filter.FromUTC})
	}
	if filter.ToUTC != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"reserved_at": *filter.ToUTC})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	selectBuilder = selectBuilder.OrderBy("reserved_at ASC")

	// Внутри транзакции с заданным диапазоном блокируем строки-кандидаты:
	// это путь создания брони, где за SELECT следует INSERT
	if dbmetrics.IsInTransaction(ctx) && filter.FromUTC != nil && filter.ToUTC != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus обновляет статус бронирования.
// Движок не перепроверяет вместимость при смене статуса - это прямое присваивание
// для административного workflow.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в доменную модель
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var rsv domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rsv.ID,
		&rsv.TenantID,
		&rsv.Name,
		&rsv.Phone,
		&rsv.Email,
		&rsv.PartySize,
		&rsv.ReservedAt,
		&rsv.TZOffsetMinutes,
		&rsv.Notes,
		&rsv.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rsv.ReservedAt = rsv.ReservedAt.UTC()
	rsv.CreatedAt = createdAt.Time
	rsv.UpdatedAt = updatedAt.Time

	return &rsv, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		rsv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, rsv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
