package handler

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/usecases/clienting"
	"github.com/alikitto/ad-dash/internal/usecases/insighting"
	"github.com/alikitto/ad-dash/pkg/apiErrors"
	"github.com/alikitto/ad-dash/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("http: failed to encode response")
	}
}

// decodeAndValidate lê o corpo JSON e aplica as tags validate. Em caso de erro já responde 400.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
		return false
	}

	if err := getValidator().Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return false
		}

		fields := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields[fieldErr.Field()] = describe(fieldErr)
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "validation failed", fields)
		return false
	}

	return true
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return fmt.Sprintf("must match %s", fieldErr.Param())
	case "url":
		return "must be a valid url"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed on %s %s", fieldErr.Tag(), fieldErr.Param())
	}
}

func pathParam(r *http.Request, name string) string {
	return strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName(name))
}

func intPathParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(pathParam(r, name))
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, fmt.Sprintf("invalid %s", name), nil)
		return 0, false
	}
	return id, true
}

// writeReadError trata falhas de endpoints de leitura: credencial rejeitada e falha de rede
// viram resultado vazio, erro do Meta vira 502.
func writeReadError(w http.ResponseWriter, r *http.Request, err error, empty any) {
	if metaclient.IsCredentialError(err) || metaclient.IsTransportError(err) {
		log.ForContext(r.Context()).WithError(err).Warn("http: meta unavailable, answering with empty result")
		writeJSON(w, http.StatusOK, empty)
		return
	}

	var upstreamErr *metaclient.UpstreamError
	if errors.As(err, &upstreamErr) {
		apiErrors.WriteError(w, apiErrors.ErrMetaUpstream, upstreamErr.Message, nil)
		return
	}

	writeServiceError(w, r, err)
}

// writeServiceError converte os erros tipados das camadas inferiores em respostas HTTP
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		cfgErr        *config.ConfigurationError
		validationErr *insighting.ValidationError
		credErr       *metaclient.CredentialError
		upstreamErr   *metaclient.UpstreamError
		transportErr  *metaclient.TransportError
	)

	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Error(), nil)
	case errors.As(err, &cfgErr):
		apiErrors.WriteError(w, apiErrors.ErrConfiguration, "not configured", cfgErr.Missing)
	case errors.As(err, &credErr):
		apiErrors.WriteErrorWithStatus(w, credErr.StatusCode, apiErrors.ErrMetaCredential, credErr.Message, map[string]any{
			"code":    credErr.Code,
			"subcode": credErr.Subcode,
		})
	case errors.As(err, &upstreamErr):
		apiErrors.WriteUpstreamError(w, upstreamErr.StatusCode, upstreamErr.Message, map[string]any{
			"code":       upstreamErr.Code,
			"subcode":    upstreamErr.Subcode,
			"fbtrace_id": upstreamErr.FBTraceID,
		})
	case errors.As(err, &transportErr):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, transportErr.Error(), nil)
	case clienting.IsNotFound(err):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case clienting.IsBadRequest(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path).Error("http: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
	}
}
