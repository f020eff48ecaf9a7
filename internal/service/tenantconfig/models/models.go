package models

import (
	"time"

	"github.com/m04kA/RBP-ReservationService/internal/domain"
	"github.com/m04kA/RBP-ReservationService/pkg/types"
)

// TimeRangePayload интервал рабочих часов в запросе/ответе
type TimeRangePayload struct {
	Open  string `json:"open"`  // HH:MM
	Close string `json:"close"` // HH:MM
}

// SlotPayload кастомный слот в запросе/ответе
type SlotPayload struct {
	From     string `json:"from"` // HH:MM
	To       string `json:"to"`   // HH:MM
	Capacity *int   `json:"capacity,omitempty"`
}

// UpdateTenantConfigRequest полное замещение конфигурации арендатора
type UpdateTenantConfigRequest struct {
	OpeningHours        map[string][]TimeRangePayload `json:"openingHours"`
	Slots               []SlotPayload                 `json:"slots"`
	Capacity            *int                          `json:"capacity,omitempty"`
	BlockedDates        []string                      `json:"blockedDates"`
	LeadHours           int                           `json:"leadHours"`
	MaxDays             int                           `json:"maxDays"`
	AutoConfirm         bool                          `json:"autoConfirm"`
	ReservationsEnabled bool                          `json:"reservationsEnabled"`
}

// TenantConfigResponse конфигурация арендатора в ответе API
type TenantConfigResponse struct {
	TenantID            int64                         `json:"tenantId"`
	OpeningHours        map[string][]TimeRangePayload `json:"openingHours"`
	Slots               []SlotPayload                 `json:"slots"`
	Capacity            *int                          `json:"capacity,omitempty"`
	BlockedDates        []string                      `json:"blockedDates"`
	LeadHours           int                           `json:"leadHours"`
	MaxDays             int                           `json:"maxDays"`
	AutoConfirm         bool                          `json:"autoConfirm"`
	ReservationsEnabled bool                          `json:"reservationsEnabled"`
	UpdatedAt           string                        `json:"updatedAt"`
}

// ToDomainConfig конвертирует запрос в доменную модель
func (r *UpdateTenantConfigRequest) ToDomainConfig(tenantID int64) *domain.TenantReservationConfig {
	hours := make(domain.WeeklyHours, len(r.OpeningHours))
	for day, ranges := range r.OpeningHours {
		converted := make([]domain.TimeRange, 0, len(ranges))
		for _, tr := range ranges {
			converted = append(converted, domain.TimeRange{
				Open:  types.TimeString(tr.Open),
				Close: types.TimeString(tr.Close),
			})
		}
		hours[day] = converted
	}

	slots := make([]domain.ReservationSlot, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, domain.ReservationSlot{
			From:     types.TimeString(s.From),
			To:       types.TimeString(s.To),
			Capacity: s.Capacity,
		})
	}

	return &domain.TenantReservationConfig{
		TenantID:            tenantID,
		OpeningHours:        hours,
		Slots:               slots,
		Capacity:            r.Capacity,
		BlockedDates:        r.BlockedDates,
		LeadHours:           r.LeadHours,
		MaxDays:             r.MaxDays,
		AutoConfirm:         r.AutoConfirm,
		ReservationsEnabled: r.ReservationsEnabled,
	}
}

// FromDomainConfig конвертирует доменную модель в ответ API
func FromDomainConfig(cfg *domain.TenantReservationConfig) *TenantConfigResponse {
	hours := make(map[string][]TimeRangePayload, len(cfg.OpeningHours))
	for day, ranges := range cfg.OpeningHours {
		converted := make([]TimeRangePayload, 0, len(ranges))
		for _, tr := range ranges {
			converted = append(converted, TimeRangePayload{
				Open:  tr.Open.String(),
				Close: tr.Close.String(),
			})
		}
		hours[day] = converted
	}

	slots := make([]SlotPayload, 0, len(cfg.Slots))
	for _, s := range cfg.Slots {
		slots = append(slots, SlotPayload{
			From:     s.From.String(),
			To:       s.To.String(),
			Capacity: s.Capacity,
		})
	}

	blockedDates := cfg.BlockedDates
	if blockedDates == nil {
		blockedDates = []string{}
	}

	return &TenantConfigResponse{
		TenantID:            cfg.TenantID,
		OpeningHours:        hours,
		Slots:               slots,
		Capacity:            cfg.Capacity,
		BlockedDates:        blockedDates,
		LeadHours:           cfg.LeadHours,
		MaxDays:             cfg.MaxDays,
		AutoConfirm:         cfg.AutoConfirm,
		ReservationsEnabled: cfg.ReservationsEnabled,
		UpdatedAt:           cfg.UpdatedAt.Format(time.RFC3339),
	}
}
