package admin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allwinajith/elms/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=admin_repo.go -destination=mock/admin_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Admin) error
	FindAll(ctx context.Context) ([]Admin, error)
	FindByID(ctx context.Context, id string) (*Admin, error)
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	UpdatePassword(ctx context.Context, id, hash, salt string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, a *Admin) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Admin, error) {
	var items []Admin
	err := r.conn(ctx).Order("username").Find(&items).Error
	return items, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Admin, error) {
	var a Admin
	if err := r.conn(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByUsername returns nil, nil when no admin has the name.
func (r *repository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	var a Admin
	err := r.conn(ctx).Where("username = ?", username).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) UpdatePassword(ctx context.Context, id, hash, salt string) (int64, error) {
	res := r.conn(ctx).
		Model(&Admin{}).
		Where("id = ?", id).
		Updates(map[string]any{"password_hash": hash, "salt": salt})
	return res.RowsAffected, res.Error
}
