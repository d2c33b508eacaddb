package payrollerrors

import (
	"net/http"

	"github.com/Yosefnago/emp-backend/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found for the requested personal id",
		http.StatusNotFound,
	)

	ErrAttendanceMissing = apperror.New(
		apperror.CodeNotFound,
		"No attendance records found for the requested period",
		http.StatusNotFound,
	)

	ErrPayConfigMissing = apperror.New(
		apperror.CodeNotFound,
		"Pay configuration not found for the requested personal id",
		http.StatusNotFound,
	)

	// ErrDataMismatch: baris absensi menunjuk personal id yang berbeda dari
	// karyawan yang diminta. Ini korupsi data, bukan kesalahan klien.
	ErrDataMismatch = apperror.New(
		apperror.CodeInvalidState,
		"Attendance records do not belong to the requested employee",
		http.StatusInternalServerError,
	)

	ErrInvalidAttendanceHours = apperror.New(
		apperror.CodeInvalidState,
		"Attendance record contains negative worked hours",
		http.StatusInternalServerError,
	)

	ErrSalaryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Salary for this employee and period already exists",
		http.StatusConflict,
	)

	ErrSlipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary slip not found for the requested period",
		http.StatusNotFound,
	)

	ErrSlipRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render salary slip",
		http.StatusInternalServerError,
	)
)
