package models

import (
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	"github.com/m04kA/RBP-ReservationService/pkg/tzoffset"
)

// Request модели

// ListReservationsRequest запрос на получение бронирований арендатора
type ListReservationsRequest struct {
	TenantID         int64
	Status           *string    // Фильтр по статусу (опционально)
	FromDate         *time.Time // Начало периода по reserved_at (опционально)
	ToDate           *time.Time // Конец периода по reserved_at (опционально)
	IncludeCancelled bool       // Включать ли отменённые брони
}

// ChangeStatusRequest запрос на смену статуса брони
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ReservationResponse бронирование для административного API
type ReservationResponse struct {
	ID        string  `json:"id"`
	TenantID  int64   `json:"tenantId"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	PartySize int     `json:"partySize"`

	ReservedAt      string `json:"reservedAt"` // RFC3339, UTC
	TZOffsetMinutes *int   `json:"tzOffsetMinutes,omitempty"`
	LocalDate       string `json:"localDate"` // YYYY-MM-DD в часовом поясе гостя
	LocalTime       string `json:"localTime"` // HH:MM в часовом поясе гостя

	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует доменную модель в ответ API.
// Локальные дата и время восстанавливаются по сохранённому смещению;
// у старых записей без смещения используется 0.
func FromDomainReservation(rsv *domain.Reservation) *ReservationResponse {
	localDate, localTime := tzoffset.Denormalize(rsv.ReservedAt, rsv.OffsetOrDefault(0))

	return &ReservationResponse{
		ID:              rsv.ID.String(),
		TenantID:        rsv.TenantID,
		Name:            rsv.Name,
		Phone:           rsv.Phone,
		Email:           rsv.Email,
		PartySize:       rsv.PartySize,
		ReservedAt:      rsv.ReservedAt.Format(time.RFC3339),
		TZOffsetMinutes: rsv.TZOffsetMinutes,
		LocalDate:       localDate.Format(domain.DateFormat),
		LocalTime:       localTime.String(),
		Status:          string(rsv.Status),
		Notes:           rsv.Notes,
		CreatedAt:       rsv.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список доменных моделей
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]*ReservationResponse, 0, len(reservations))
	for _, rsv := range reservations {
		items = append(items, FromDomainReservation(rsv))
	}
	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
