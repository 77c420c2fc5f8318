package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
)

// Resource error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
)

// Input error codes. Validation codes raised by the domain layer
// (INVALID_NAME, INVALID_EMAIL, UNKNOWN_INCOME_TYPE, ...) share the
// INVALID_/UNKNOWN_ prefixes and map to 400 by prefix.
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeInvalidJSON  = "INVALID_JSON"
)

// errorCodeHTTPStatus maps exact error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:      http.StatusInternalServerError,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeInvalidJSON:   http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status for an error code. Unlisted
// INVALID_ and UNKNOWN_ codes are client errors; anything else is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") || strings.HasPrefix(code, "UNKNOWN_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
