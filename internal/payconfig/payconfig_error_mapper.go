package payconfig

import (
	"errors"
	"strings"

	payconfigerrors "github.com/Yosefnago/emp-backend/internal/payconfig/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_pay_config_owner_personal" {
			return payconfigerrors.ErrPayConfigAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_pay_config_owner_personal") {
		return payconfigerrors.ErrPayConfigAlreadyExists
	}

	return err
}
