package handler

import (
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/errors"
)

// errorMessage returns the client-safe message of an AppError, or fallback.
func errorMessage(err error, fallback string) string {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.Message()
	}

	return fallback
}
