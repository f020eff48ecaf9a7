package notifyservice

// ReservationCreatedEvent уведомление о новой брони
type ReservationCreatedEvent struct {
	ReservationID string  `json:"reservation_id"`
	TenantID      int64   `json:"tenant_id"`
	GuestName     string  `json:"guest_name"`
	GuestPhone    string  `json:"guest_phone"`
	GuestEmail    *string `json:"guest_email,omitempty"`
	PartySize     int     `json:"party_size"`
	ReservedAt    string  `json:"reserved_at"` // RFC3339, UTC
	LocalDate     string  `json:"local_date"`  // YYYY-MM-DD в часовом поясе гостя
	LocalTime     string  `json:"local_time"`  // HH:MM в часовом поясе гостя
	Status        string  `json:"status"`
}

// StatusChangedEvent уведомление о смене статуса брони
type StatusChangedEvent struct {
	ReservationID string `json:"reservation_id"`
	TenantID      int64  `json:"tenant_id"`
	GuestPhone    string `json:"guest_phone"`
	OldStatus     string `json:"old_status"`
	NewStatus     string `json:"new_status"`
}

// ErrorResponse модель ошибки от NotifyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
