package employeeerrors

import (
	"net/http"

	"github.com/Yosefnago/emp-backend/internal/shared/apperror"
)

var (
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this personal id already exists",
		http.StatusConflict,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
