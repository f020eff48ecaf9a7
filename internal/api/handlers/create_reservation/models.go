package create_reservation

import (
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	createReservation "github.com/m04kA/RBP-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	PartySize       int     `json:"partySize"`
	Date            string  `json:"date"` // "2025-06-10"
	Time            string  `json:"time"` // "19:30"
	TZOffsetMinutes *int    `json:"tzOffsetMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	ReservedAt string `json:"reservedAt"` // RFC3339, UTC
	LocalDate  string `json:"localDate"`
	LocalTime  string `json:"localTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(tenantID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		TenantID:        tenantID,
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		PartySize:       r.PartySize,
		Date:            date,
		Time:            startTime,
		TZOffsetMinutes: r.TZOffsetMinutes,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		ID:         resp.ID.String(),
		Status:     resp.Status,
		ReservedAt: resp.ReservedAt.Format(time.RFC3339),
		LocalDate:  resp.LocalDate.Format(domain.DateFormat),
		LocalTime:  resp.LocalTime.String(),
	}
}
