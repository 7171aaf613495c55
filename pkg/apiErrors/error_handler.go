package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

const (
	// Autenticação
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"
	ErrUserAlreadyExists     = "AUTH_009"

	// Validação
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrTooManyRequests     = "VAL_004"

	// Recursos
	ErrResourceNotFound = "RES_001"
	ErrMethodNotAllowed = "RES_002"

	// Meta Graph API
	ErrMetaCredential = "META_001"
	ErrMetaUpstream   = "META_002"

	// Configuração incompleta no servidor
	ErrConfiguration = "CFG_001"

	// Servidor
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
	ErrCommunication     = "SRV_004"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrTooManyRequests:       http.StatusTooManyRequests,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrMetaCredential:        http.StatusBadGateway,
	ErrMetaUpstream:          http.StatusBadGateway,
	ErrConfiguration:         http.StatusServiceUnavailable,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError é o corpo padrão das respostas de erro
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	write(w, StatusFor(code), APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// WriteUpstreamError repassa o status devolvido pelo Meta em operações de escrita.
// Status fora da faixa de erro viram 502.
func WriteUpstreamError(w http.ResponseWriter, status int, message string, details any) {
	WriteErrorWithStatus(w, status, ErrMetaUpstream, message, details)
}

// WriteErrorWithStatus usa o status recebido no lugar do mapeado pelo código
func WriteErrorWithStatus(w http.ResponseWriter, status int, code string, message string, details any) {
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusBadGateway
	}

	write(w, status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

func write(w http.ResponseWriter, status int, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsoniter.NewEncoder(w).Encode(apiErr)
}
