package payroll

import (
	"errors"
	"strings"

	payrollerrors "github.com/Yosefnago/emp-backend/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_owner_personal_period" {
			return payrollerrors.ErrSalaryAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_owner_personal_period") {
		return payrollerrors.ErrSalaryAlreadyExists
	}

	return err
}
