package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements run on tx. A nil tx yields
// the plain db scoped to ctx.
func BindTx(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}
	bound := db.Session(&gorm.Session{Context: ctx, NewDB: true})
	bound.Statement.ConnPool = tx
	return bound
}
