package metaclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
)

// CredentialError indica que o Meta rejeitou o access token
type CredentialError struct {
	StatusCode int
	Code       int
	Subcode    int
	Type       string
	Message    string
	FBTraceID  string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("meta: credential rejected (code=%d subcode=%d): %s", e.Code, e.Subcode, e.Message)
}

// UpstreamError é qualquer outro erro de aplicação devolvido pelo Graph API
type UpstreamError struct {
	StatusCode int
	Code       int
	Subcode    int
	Type       string
	Message    string
	FBTraceID  string
	Retryable  bool
}

func (e *UpstreamError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("meta: upstream error (status=%d code=%d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("meta: upstream error (status=%d): %s", e.StatusCode, e.Message)
}

// TransportError cobre timeout, DNS, conexão recusada e circuito aberto
type TransportError struct {
	Op      string
	Err     error
	Timeout bool
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("meta: transport error on %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsCredentialError(err error) bool {
	var credErr *CredentialError
	return errors.As(err, &credErr)
}

func IsUpstreamError(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr)
}

func IsTransportError(err error) bool {
	var trErr *TransportError
	return errors.As(err, &trErr)
}

// classifyError transforma uma resposta de erro do Graph API no erro tipado.
// Os campos estruturados decidem; o texto da mensagem só é olhado quando
// o payload não traz código reconhecido.
func classifyError(statusCode int, body []byte) error {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == nil {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = http.StatusText(statusCode)
		}
		if len(message) > 512 {
			message = message[:512]
		}
		return &UpstreamError{
			StatusCode: statusCode,
			Message:    message,
			Retryable:  retryableStatus(statusCode),
		}
	}

	details := errResp.Error

	if errResp.IsTokenExpired() || (details.Code == 0 && mentionsCredential(details.Message)) {
		return &CredentialError{
			StatusCode: statusCode,
			Code:       details.Code,
			Subcode:    details.ErrorSubcode,
			Type:       details.Type,
			Message:    details.Message,
			FBTraceID:  details.FBTraceID,
		}
	}

	return &UpstreamError{
		StatusCode: statusCode,
		Code:       details.Code,
		Subcode:    details.ErrorSubcode,
		Type:       details.Type,
		Message:    details.Message,
		FBTraceID:  details.FBTraceID,
		Retryable:  errResp.IsRetryable() || retryableStatus(statusCode),
	}
}

func mentionsCredential(message string) bool {
	message = strings.ToLower(message)
	return strings.Contains(message, "expired") || strings.Contains(message, "invalid")
}

func retryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}

func isRetryable(err error) bool {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Retryable
	}

	var trErr *TransportError
	if errors.As(err, &trErr) {
		return !errors.Is(trErr.Err, errCircuitOpen)
	}

	return false
}
