package assistant

import (
	"errors"
	"io/fs"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/domain"
)

// Classify отображает сбой в категорию, видимую пользователю.
// Тотальная детерминированная функция: нераспознанный сбой деградирует
// до остаточной категории, сырые детали до пользователя не доходят.
func Classify(err error) domain.ErrorCategory {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case domain.APIErrorConnection, domain.APIErrorTimeout:
			return domain.ErrorCategoryNetwork
		case domain.APIErrorBadRequest, domain.APIErrorNotFound:
			return domain.ErrorCategoryRequest
		case domain.APIErrorRateLimit:
			return domain.ErrorCategoryLimit
		case domain.APIErrorConflict, domain.APIErrorUnprocessable:
			return domain.ErrorCategoryClient
		case domain.APIErrorAuthentication, domain.APIErrorPermission:
			return domain.ErrorCategoryAuth
		case domain.APIErrorInternal:
			return domain.ErrorCategoryServer
		default:
			return domain.ErrorCategoryGeneric
		}
	}

	// локальные I/O сбои (пропавший временный файл, отказ записи) - серверные
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, fs.ErrNotExist) {
		return domain.ErrorCategoryServer
	}

	return domain.ErrorCategoryGeneric
}
