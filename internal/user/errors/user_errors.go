package usererrors

import (
	"net/http"

	"go-timesheet/internal/shared/apperror"
)

var ErrUserNotFound = apperror.New(
	apperror.CodeNotFound,
	"User not found",
	http.StatusNotFound,
)
