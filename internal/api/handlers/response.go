package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse тело ответа с ошибкой.
// Форма {"detail": "..."} зафиксирована контрактом фронтенда.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// DecodeJSON декодирует JSON тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// RespondBadRequest отвечает 400 с переданным описанием
func RespondBadRequest(w http.ResponseWriter, detail string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Detail: detail})
}

// RespondUnauthorized отвечает 401
func RespondUnauthorized(w http.ResponseWriter, detail string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Detail: detail})
}

// RespondForbidden отвечает 403
func RespondForbidden(w http.ResponseWriter, detail string) {
	RespondJSON(w, http.StatusForbidden, ErrorResponse{Detail: detail})
}

// RespondNotFound отвечает 404
func RespondNotFound(w http.ResponseWriter, detail string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Detail: detail})
}

// RespondConflict отвечает 409
func RespondConflict(w http.ResponseWriter, detail string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Detail: detail})
}

// RespondInternalError отвечает 500; к generic-префиксу добавляется
// сообщение исходной ошибки для диагностики
func RespondInternalError(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{
		Detail: fmt.Sprintf("Internal server error: %s", message),
	})
}
