package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorCode represents standard error codes.
type ErrorCode string

const (
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeTooLarge   ErrorCode = "PAYLOAD_TOO_LARGE"
	ErrCodeRateLimit  ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// SuccessResponse wraps API payloads.
type SuccessResponse struct {
	Status    string `json:"status"`
	Data      any    `json:"data,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// GetRequestID returns the id assigned by the request id middleware.
func GetRequestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}

// WriteJSON writes data as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		loggerWithRequest(r).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteSuccess writes a standardised success response.
func WriteSuccess(w http.ResponseWriter, r *http.Request, data any) {
	WriteJSON(w, r, SuccessResponse{
		Status:    "success",
		Data:      data,
		RequestID: GetRequestID(r),
	}, http.StatusOK)
}

// WriteErrorMessage writes a standardised error response.
func WriteErrorMessage(w http.ResponseWriter, r *http.Request, message string, status int, code ErrorCode) {
	requestID := GetRequestID(r)

	loggerWithRequest(r).Warn().
		Int("status", status).
		Str("code", string(code)).
		Str("message", message).
		Msg("API error response")

	WriteJSON(w, r, ErrorResponse{
		Status:    status,
		Message:   message,
		Code:      string(code),
		RequestID: requestID,
	}, status)
}

// WriteHealthy writes the health check response.
func WriteHealthy(w http.ResponseWriter, r *http.Request, service string) {
	WriteJSON(w, r, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Service:   service,
	}, http.StatusOK)
}
