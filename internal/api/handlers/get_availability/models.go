package get_availability

import (
	"github.com/m04kA/RBP-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/RBP-ReservationService/internal/usecase/get_availability"
)

// WindowPayload окно бронирования в ответе API
type WindowPayload struct {
	From     string `json:"from"` // HH:MM
	To       string `json:"to"`   // HH:MM
	Occupied int    `json:"occupied"`
	Capacity *int   `json:"capacity,omitempty"` // nil = без ограничения
	Free     *int   `json:"free,omitempty"`     // nil = без ограничения
}

// GetAvailabilityResponse доступность арендатора на дату
type GetAvailabilityResponse struct {
	TenantID int64           `json:"tenantId"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Windows  []WindowPayload `json:"windows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *GetAvailabilityResponse {
	windows := make([]WindowPayload, 0, len(resp.Windows))
	for _, w := range resp.Windows {
		windows = append(windows, WindowPayload{
			From:     w.From.String(),
			To:       w.To.String(),
			Occupied: w.Occupied,
			Capacity: w.Capacity,
			Free:     w.Free,
		})
	}

	return &GetAvailabilityResponse{
		TenantID: resp.TenantID,
		Date:     resp.Date.Format(domain.DateFormat),
		Windows:  windows,
	}
}
