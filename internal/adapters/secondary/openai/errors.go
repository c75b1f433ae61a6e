package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// errorResponse тело ошибки OpenAI API
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// kindForStatus сводит HTTP-статус к виду сбоя из закрытого множества
func kindForStatus(status int) domain.APIErrorKind {
	switch status {
	case http.StatusBadRequest:
		return domain.APIErrorBadRequest
	case http.StatusUnauthorized:
		return domain.APIErrorAuthentication
	case http.StatusForbidden:
		return domain.APIErrorPermission
	case http.StatusNotFound:
		return domain.APIErrorNotFound
	case http.StatusRequestTimeout:
		return domain.APIErrorTimeout
	case http.StatusConflict:
		return domain.APIErrorConflict
	case http.StatusUnprocessableEntity:
		return domain.APIErrorUnprocessable
	case http.StatusTooManyRequests:
		return domain.APIErrorRateLimit
	default:
		if status >= 500 {
			return domain.APIErrorInternal
		}
		return domain.APIErrorUnknown
	}
}

// apiErrorFromResponse строит APIError из статуса и тела ответа
func apiErrorFromResponse(status int, body []byte) *domain.APIError {
	apiErr := &domain.APIError{
		Kind:       kindForStatus(status),
		StatusCode: status,
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		apiErr.Message = errResp.Error.Message
	}

	return apiErr
}

// transportError сводит сетевой сбой к APIError (connection либо timeout)
func transportError(err error) *domain.APIError {
	kind := domain.APIErrorConnection

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		kind = domain.APIErrorTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		kind = domain.APIErrorTimeout
	}

	return &domain.APIError{
		Kind: kind,
		Err:  err,
	}
}
