package leavetype

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allwinajith/elms/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leavetype_repo.go -destination=mock/leavetype_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lt *LeaveType) error
	FindAll(ctx context.Context) ([]LeaveType, error)
	FindByID(ctx context.Context, id string) (*LeaveType, error)
	FindByName(ctx context.Context, name string) (*LeaveType, error)
	Update(ctx context.Context, lt *LeaveType) error
	Delete(ctx context.Context, id string) (int64, error)
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

func (r *repository) Create(ctx context.Context, lt *LeaveType) error {
	return r.conn(ctx).Create(lt).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveType, error) {
	var items []LeaveType
	err := r.conn(ctx).Order("name").Find(&items).Error
	return items, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveType, error) {
	var lt LeaveType
	if err := r.conn(ctx).First(&lt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lt, nil
}

// FindByName returns (nil, nil) when no leave type carries the name.
func (r *repository) FindByName(ctx context.Context, name string) (*LeaveType, error) {
	var lt LeaveType
	err := r.conn(ctx).Where("name = ?", name).First(&lt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) Update(ctx context.Context, lt *LeaveType) error {
	return r.conn(ctx).
		Model(&LeaveType{}).
		Where("id = ?", lt.ID).
		Updates(map[string]any{
			"name":        lt.Name,
			"description": lt.Description,
			"max_days":    lt.MaxDays,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.conn(ctx).Delete(&LeaveType{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
