// Package handlers общие помощники HTTP-слоя: декодирование запросов,
// формирование ответов и стабильные коды причин отказа.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Стабильные строковые коды причин отказа. Клиенты ветвятся по ним,
// человекочитабельное сообщение - только для отображения.
const (
	CodeInvalidInput         = "invalid_input"
	CodeTenantNotFound       = "tenant_not_found"
	CodeReservationsDisabled = "reservations_disabled"
	CodeInPast               = "in_past"
	CodeTooSoon              = "too_soon"
	CodeTooFar               = "too_far"
	CodeDateBlocked          = "date_blocked"
	CodeOutsideSchedule      = "outside_schedule"
	CodeSlotFull             = "slot_full"
	CodeNotFound             = "not_found"
	CodeInternal             = "internal_error"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ответ с кодом причины и сообщением
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// RespondBadRequest пишет 400 с кодом причины
func RespondBadRequest(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

// RespondNotFound пишет 404 с кодом причины
func RespondNotFound(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusNotFound, code, message)
}

// RespondConflict пишет 409 с кодом причины
func RespondConflict(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusConflict, code, message)
}

// RespondInternalError пишет 500 со стандартным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, "внутренняя ошибка сервиса")
}
