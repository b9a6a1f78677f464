package admin

import (
	"errors"

	adminerrors "github.com/allwinajith/elms/internal/admin/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return adminerrors.ErrAdminNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_admins_username" {
		return adminerrors.ErrUsernameExists
	}

	return err
}
