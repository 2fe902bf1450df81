package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Yashraj9595/mealmate/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondData wraps a successful payload in the standard envelope.
func respondData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}

// respondMessage reports success without a data payload.
func respondMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": message})
}

type authResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    userDTO `json:"user"`
}

// respondAuth answers login/register, which carry token and user at the top
// level instead of inside data.
func respondAuth(w http.ResponseWriter, token string, user userDTO) {
	writeJSON(w, http.StatusOK, authResponse{Success: true, Token: token, User: user})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrCodeMismatch),
		errors.Is(err, common.ErrCodeExpired),
		errors.Is(err, common.ErrorInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrTooManyCodes):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a service error to a status code and the failure
// envelope. Internal errors are masked to avoid leaking implementation
// details to the app.
func respondError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}
