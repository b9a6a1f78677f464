package leave

import (
	"errors"

	leaveerrors "github.com/allwinajith/elms/internal/leave/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	return err
}
