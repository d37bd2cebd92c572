package response

import (
	"encoding/json"
	"net/http"

	"github.com/inventrack/inventory-service/internal/errors"
)

// ErrorResponse is the error body shape for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// Error maps an AppError to its status code and writes {"error": message}.
// Unknown error types fall back to a 500 carrying the error's message.
func Error(w http.ResponseWriter, err error) {

	statusCode := http.StatusInternalServerError
	message := err.Error()

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		message = appErr.Message
	}

	WriteJson(w, statusCode, ErrorResponse{Error: message})
}
