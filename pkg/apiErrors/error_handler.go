package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to clients
const (
	// Authentication errors (AUTH_*)
	ErrInvalidCredentials    = "AUTH_001" // Invalid credentials
	ErrUserDisabled          = "AUTH_002" // User disabled
	ErrUserNotFound          = "AUTH_003" // User not found
	ErrInvalidToken          = "AUTH_004" // Invalid token
	ErrExpiredToken          = "AUTH_005" // Expired token
	ErrInsufficientPrivilege = "AUTH_006" // Insufficient privileges
	ErrUserAlreadyExists     = "AUTH_007" // User already exists

	// Validation errors (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required data missing
	ErrInvalidFormat       = "VAL_003" // Invalid data format
	ErrInvalidOverride     = "VAL_004" // Malformed override scope or value

	// Domain errors (PRC_*)
	ErrNoRatesAvailable  = "PRC_001" // No quotes for the requested scope
	ErrVehicleNotFound   = "PRC_002" // Unknown vehicle identifier
	ErrOverrideNotFound  = "PRC_003" // Override id does not exist
	ErrIngestionDisabled = "PRC_005" // Ingestion scheduler not available

	// Server errors (SRV_*)
	ErrInternalServer    = "SRV_001" // Internal server error
	ErrDatabaseOperation = "SRV_002" // Database operation failed
)

// httpStatusMap maps error codes to HTTP statuses
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidOverride:       http.StatusBadRequest,
	ErrNoRatesAvailable:      http.StatusNotFound,
	ErrVehicleNotFound:       http.StatusNotFound,
	ErrOverrideNotFound:      http.StatusNotFound,
	ErrIngestionDisabled:     http.StatusServiceUnavailable,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError is the standard error payload
type APIError struct {
	Code    string `json:"code"`              // Machine-readable error code
	Message string `json:"message,omitempty"` // Human-readable description
	Details any    `json:"details,omitempty"` // Optional extra detail
}

// WriteError writes the standard error payload to the response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
