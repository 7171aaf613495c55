package domain

import "time"

// CredentialStatus é o resultado da última verificação do token do Meta
type CredentialStatus struct {
	Healthy   bool      `json:"healthy"`
	Owner     string    `json:"owner,omitempty"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Message   string    `json:"message,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}
