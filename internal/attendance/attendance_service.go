package attendance

import (
	"context"
	"time"

	attendanceerrors "github.com/Yosefnago/emp-backend/internal/attendance/errors"
	"github.com/Yosefnago/emp-backend/internal/employee"

	"github.com/google/uuid"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, username string, req RecordAttendanceRequest) (AttendanceResponse, error)
	GetPeriod(ctx context.Context, username, personalID string, year, month int) ([]AttendanceResponse, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
}

// NewService butuh repo karyawan: baris absensi tanpa karyawan yang valid
// adalah sumber DataMismatch di payroll, jadi ditolak sejak pencatatan.
func NewService(repo Repository, employees employee.Repository) Service {
	return &service{repo: repo, employees: employees}
}

func (s *service) Record(
	ctx context.Context,
	username string,
	req RecordAttendanceRequest,
) (AttendanceResponse, error) {
	emp, err := s.employees.FindByPersonalID(ctx, username, req.PersonalID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if emp == nil {
		return AttendanceResponse{}, attendanceerrors.ErrUnknownEmployee
	}
	if !emp.Active {
		return AttendanceResponse{}, attendanceerrors.ErrInactiveEmployee
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AttendanceResponse{}, err
	}

	a := &Attendance{
		ID:             uuid.New(),
		Username:       username,
		PersonalID:     req.PersonalID,
		AttendanceDate: date,
		TotalHours:     req.TotalHours,
		TravelAllow:    req.TravelAllow,
		Status:         req.Status,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*a), nil
}

func (s *service) GetPeriod(
	ctx context.Context,
	username, personalID string,
	year, month int,
) ([]AttendanceResponse, error) {
	days, err := s.repo.FindPayrollDays(ctx, username, personalID, year, month)
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(days))
	for i, day := range days {
		resp[i] = AttendanceResponse{
			PersonalID:  day.PersonalID,
			Date:        day.Date.Format("2006-01-02"),
			TotalHours:  day.TotalHours,
			TravelAllow: day.TravelAllow,
			Status:      day.Status,
		}
	}
	return resp, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID.String(),
		PersonalID:  a.PersonalID,
		Date:        a.AttendanceDate.Format("2006-01-02"),
		TotalHours:  a.TotalHours,
		TravelAllow: a.TravelAllow,
		Status:      a.Status,
		Notes:       a.Notes,
	}
}
