package leavetype

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	leavetypeerrors "github.com/allwinajith/elms/internal/leavetype/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// AllKey holds the cached catalog list.
	AllKey   = "leave_types:all"
	cacheTTL = 30 * time.Minute
)

type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id string) (LeaveTypeResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (UpdateResult, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService accepts a nil redis client; the list is then always read from the database.
func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return LeaveTypeResponse{}, leavetypeerrors.ErrNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByName(ctx, req.Name)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	if existing != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeNameExists
	}

	lt := &LeaveType{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if req.MaxDays != nil {
		lt.MaxDays = *req.MaxDays
	}

	if err := qtx.Create(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return LeaveTypeResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("leave type created", zap.String("leave_type_id", lt.ID.String()), zap.String("name", lt.Name))

	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, AllKey).Result()
		if err == nil {
			var resp []LeaveTypeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("leave type cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(AllKey, func() (interface{}, error) {
		items, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(items)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, AllKey, data, cacheTTL).Err(); err != nil {
					s.logger.Warn("leave type cache write failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]LeaveTypeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeNotFound
	}

	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*lt), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (UpdateResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UpdateResult{}, leavetypeerrors.ErrLeaveTypeNotFound
	}
	if strings.TrimSpace(req.Name) == "" {
		return UpdateResult{}, leavetypeerrors.ErrNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UpdateResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindByID(ctx, id)
	if err != nil {
		return UpdateResult{}, mapRepositoryError(err)
	}

	maxDays := 0
	if req.MaxDays != nil {
		maxDays = *req.MaxDays
	}

	if lt.Name == req.Name && lt.Description == req.Description && lt.MaxDays == maxDays {
		return UpdateResult{LeaveType: mapToResponse(*lt), Changed: false}, nil
	}

	if lt.Name != req.Name {
		other, err := qtx.FindByName(ctx, req.Name)
		if err != nil {
			return UpdateResult{}, err
		}
		if other != nil && other.ID != lt.ID {
			return UpdateResult{}, leavetypeerrors.ErrLeaveTypeNameExists
		}
	}

	lt.Name = req.Name
	lt.Description = req.Description
	lt.MaxDays = maxDays

	if err := qtx.Update(ctx, lt); err != nil {
		return UpdateResult{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UpdateResult{}, err
	}

	s.invalidate(ctx)

	return UpdateResult{LeaveType: mapToResponse(*lt), Changed: true}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leavetypeerrors.ErrLeaveTypeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	affected, err := qtx.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return leavetypeerrors.ErrLeaveTypeNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("leave type deleted", zap.String("leave_type_id", id))

	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, AllKey).Err(); err != nil {
		s.logger.Error("failed to invalidate leave type cache", zap.String("key", AllKey), zap.Error(err))
	}
}
