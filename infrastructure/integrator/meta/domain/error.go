package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
	UserTitle    string `json:"error_user_title,omitempty"`
	UserMessage  string `json:"error_user_msg,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado ou inválido.
// Código 190 é sempre problema de token; subcódigos 458-467 acompanham OAuthException.
func (e *ErrorResponse) IsTokenExpired() bool {
	if e == nil || e.Error == nil {
		return false
	}

	if e.Error.Code == 190 {
		return true
	}

	if e.Error.Type != "OAuthException" {
		return false
	}

	switch e.Error.ErrorSubcode {
	case 458, 459, 460, 463, 464, 467:
		return true
	}

	return false
}

// IsRetryable indica códigos de throttling e falhas temporárias do Graph API
func (e *ErrorResponse) IsRetryable() bool {
	if e == nil || e.Error == nil {
		return false
	}

	switch e.Error.Code {
	case 1, 2, 4, 17, 32, 341, 613:
		return true
	}

	return false
}
