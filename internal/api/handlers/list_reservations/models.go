package list_reservations

import (
	"net/url"
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	"github.com/m04kA/RBP-ReservationService/internal/service/reservations/models"
)

// parseQuery разбирает query-параметры списка бронирований.
// Поддерживаются status, from, to (YYYY-MM-DD) и includeCancelled.
func parseQuery(tenantID int64, query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{
		TenantID: tenantID,
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if from := query.Get("from"); from != "" {
		parsed, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			return nil, err
		}
		fromUTC := parsed.UTC()
		req.FromDate = &fromUTC
	}

	if to := query.Get("to"); to != "" {
		parsed, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			return nil, err
		}
		// Верхняя граница не включается, поэтому берём начало следующего дня
		toUTC := parsed.UTC().AddDate(0, 0, 1)
		req.ToDate = &toUTC
	}

	req.IncludeCancelled = query.Get("includeCancelled") == "true"

	return req, nil
}
