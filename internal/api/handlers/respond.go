package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/user-auth-service/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeValidationErrors returns the field->message map under the "error" key
// with 422, one message per offending field.
func writeValidationErrors(w http.ResponseWriter, errs validation.Errors) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]validation.Errors{"error": errs})
}
