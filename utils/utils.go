package utils

import (
	"encoding/json"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

// RespondError writes {"error": message} and logs the underlying cause.
// The message is the client-facing text; err carries the detail.
func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		zap.L().Error(message, zap.Int("status", statusCode), zap.Error(err))
	}
	RespondJSON(w, statusCode, map[string]string{"error": message})
}

// RespondFieldErrors writes {"error": {field: [messages]}} for validation
// failures, keeping field-level detail instead of a bare string.
func RespondFieldErrors(w http.ResponseWriter, fieldErrors map[string][]string) {
	RespondJSON(w, http.StatusBadRequest, map[string]interface{}{"error": fieldErrors})
}
