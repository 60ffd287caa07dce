package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// JSON, başarılı bir yanıtı olduğu gibi (envelope'suz) gönderir.
// API kontratı response body şekillerini sabitler — {"id", "username"},
// {"access_token", "user"} gibi — bu yüzden payload bir wrapper'a sarılmaz.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Error, hata yanıtı gönderir.
// Domain error'ları uygun HTTP status code'a çevrilir, body her zaman
// {"message": "..."} şeklindedir.
func Error(w http.ResponseWriter, err error) {
	ErrorWithMessage(w, mapErrorToStatus(err), cleanMessage(err))
}

// ErrorWithMessage, özel mesajlı hata yanıtı gönderir.
func ErrorWithMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		http.Error(w, "failed to encode error response", http.StatusInternalServerError)
	}
}

// mapErrorToStatus, domain error'ları HTTP status code'larına eşler.
// errors.Is() error chain'ini kontrol eder — wrap edilmiş error'lar da
// doğru match eder.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// cleanMessage, sentinel prefix'ini ("unauthorized: ", "not found: " vb.)
// mesajdan ayıklar. Client "Invalid credentials" görür, "unauthorized:
// Invalid credentials" değil.
func cleanMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrNotFound, ErrUnauthorized, ErrForbidden, ErrAlreadyExists, ErrBadRequest, ErrInternal} {
		prefix := sentinel.Error() + ": "
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
