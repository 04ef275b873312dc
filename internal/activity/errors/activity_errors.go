package activityerrors

import (
	"errors"
	"net/http"

	"go-timesheet/internal/shared/apperror"
)

// ErrDuplicateEvent is returned by the repository when the event was already
// recorded.
var ErrDuplicateEvent = errors.New("activity event already recorded")

var ErrInvalidEvent = apperror.New(
	apperror.CodeInvalidInput,
	"invalid timesheet lifecycle event",
	http.StatusBadRequest,
)
