package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/Yosefnago/emp-backend/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_employee_owner_personal" {
			return employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "idx_employee_owner_personal") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
