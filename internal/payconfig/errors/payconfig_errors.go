package payconfigerrors

import (
	"net/http"

	"github.com/Yosefnago/emp-backend/internal/shared/apperror"
)

var (
	ErrPayConfigAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Pay configuration for this employee already exists",
		http.StatusConflict,
	)
	ErrPayConfigNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay configuration not found",
		http.StatusNotFound,
	)
)
