package attendanceerrors

import (
	"net/http"

	"github.com/Yosefnago/emp-backend/internal/shared/apperror"
)

var (
	ErrUnknownEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Attendance refers to an unknown employee",
		http.StatusUnprocessableEntity,
	)

	ErrInactiveEmployee = apperror.New(
		apperror.CodeInvalidState,
		"Attendance cannot be recorded for an inactive employee",
		http.StatusConflict,
	)
)
