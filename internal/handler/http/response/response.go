package response

import (
	"encoding/json"
	"net/http"
)

// Severity tells a client how to present the message of a response.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Response struct {
	Success  bool         `json:"success"`
	Message  string       `json:"message,omitempty"`
	Severity Severity     `json:"severity"`
	Data     interface{}  `json:"data,omitempty"`
	Error    *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := Response{
			Success:  false,
			Severity: SeverityError,
			Error: &ErrorDetail{
				Code:    "ENCODING_ERROR",
				Message: "Failed to encode response",
			},
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

func writeError(w http.ResponseWriter, statusCode int, severity Severity, code, message string, details map[string]string) {
	writeJSON(w, statusCode, Response{
		Success:  false,
		Message:  message,
		Severity: severity,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success:  true,
		Severity: SeverityInfo,
		Data:     data,
	})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success:  true,
		Message:  message,
		Severity: SeveritySuccess,
		Data:     data,
	})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Success:  true,
		Message:  message,
		Severity: SeveritySuccess,
		Data:     data,
	})
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeError(w, http.StatusBadRequest, SeverityError, "BAD_REQUEST", message, details)
}

func ValidationError(w http.ResponseWriter, message string, details map[string]string) {
	writeError(w, http.StatusUnprocessableEntity, SeverityError, "VALIDATION_ERROR", message, details)
}

func NotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, SeverityError, "NOT_FOUND", message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, SeverityError, "CONFLICT", message, nil)
}

// ConflictWarning is a conflict the client should show as a warning, such as a
// repeated check-in.
func ConflictWarning(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, SeverityWarning, "CONFLICT", message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, SeverityError, "INTERNAL_SERVER_ERROR", message, nil)
}
