package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	quotadomain "seokit/middleware/quota/domain"
	"seokit/toolkit/domain"
)

// ErrorResponse é o formato JSON de toda falha.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, field string) {
	writeJSON(w, status, ErrorResponse{
		Error:      http.StatusText(status),
		StatusCode: status,
		Message:    msg,
		Field:      field,
	})
}

// statusFor traduz a taxonomia de erros para status HTTP.
func statusFor(err error) int {
	switch {
	case domain.IsKind(err, domain.KindValidation):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.KindNotFound), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		a.log.Error("tool failed", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		a.log.Debug("tool rejected", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeError(w, status, err.Error(), domain.FieldOf(err))
}

const maxBody = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalid("decode", "body", err)
	}
	return nil
}

// QuotaRejected responde a recusa da cota no formato de erro da API.
func QuotaRejected(w http.ResponseWriter, _ *http.Request, dec quotadomain.Decision) {
	writeError(w, http.StatusTooManyRequests, fmt.Sprintf("quota exceeded, retry in %s", dec.RetryAfter), "")
}

// Overloaded responde quando não há vaga de execução.
func Overloaded(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusServiceUnavailable, "server is busy, try again", "")
}
