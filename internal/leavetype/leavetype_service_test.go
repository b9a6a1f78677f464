package leavetype_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/allwinajith/elms/internal/leavetype"
	leavetypeerrors "github.com/allwinajith/elms/internal/leavetype/errors"
	leavetypeMock "github.com/allwinajith/elms/internal/leavetype/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   leavetype.Service
	repo      *leavetypeMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := leavetypeMock.NewMockRepository(ctrl)

	t.Cleanup(func() { db.Close() })

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   leavetype.NewService(db, repo, rdb),
		repo:      repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func intPtr(v int) *int { return &v }

func TestLeaveTypeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := leavetype.CreateLeaveTypeRequest{Name: "Sick", Description: "Sick leave", MaxDays: intPtr(12)}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByName(ctx, "Sick").Return(nil, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, lt *leavetype.LeaveType) error {
				assert.Equal(t, "Sick", lt.Name)
				assert.Equal(t, 12, lt.MaxDays)
				assert.NotEqual(t, uuid.Nil, lt.ID)
				return nil
			})
		deps.redisMock.ExpectDel(leavetype.AllKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Sick", resp.Name)
		assert.Equal(t, 12, resp.MaxDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("max days defaults to zero", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByName(ctx, "Unpaid").Return(nil, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redisMock.ExpectDel(leavetype.AllKey).SetVal(0)

		resp, err := deps.service.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "Unpaid"})

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.MaxDays)
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByName(ctx, "Sick").Return(&leavetype.LeaveType{ID: uuid.New(), Name: "Sick"}, nil)

		_, err := deps.service.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "Sick"})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNameExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unique index race maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByName(ctx, "Sick").Return(nil, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_leave_types_name"})

		_, err := deps.service.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "Sick"})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNameExists)
	})

	t.Run("blank name", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, leavetype.CreateLeaveTypeRequest{Name: "  "})

		assert.ErrorIs(t, err, leavetypeerrors.ErrNameRequired)
	})
}

func TestLeaveTypeService_GetAll(t *testing.T) {
	ctx := context.Background()
	items := []leavetype.LeaveType{
		{ID: uuid.New(), Name: "Annual", MaxDays: 20},
		{ID: uuid.New(), Name: "Sick", MaxDays: 12},
	}

	t.Run("cache miss loads from repo and stores", func(t *testing.T) {
		deps := setupServiceTest(t)

		expected := []leavetype.LeaveTypeResponse{
			{ID: items[0].ID.String(), Name: "Annual", MaxDays: 20},
			{ID: items[1].ID.String(), Name: "Sick", MaxDays: 12},
		}
		data, _ := json.Marshal(expected)

		deps.redisMock.ExpectGet(leavetype.AllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(items, nil)
		deps.redisMock.ExpectSet(leavetype.AllKey, data, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips repo", func(t *testing.T) {
		deps := setupServiceTest(t)

		cached := []leavetype.LeaveTypeResponse{{ID: uuid.NewString(), Name: "Casual", MaxDays: 5}}
		data, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet(leavetype.AllKey).SetVal(string(data))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("repo error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redisMock.ExpectGet(leavetype.AllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
	})
}

func TestLeaveTypeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetByID(ctx, "abc")

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
	})
}

func TestLeaveTypeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	stored := func() *leavetype.LeaveType {
		return &leavetype.LeaveType{ID: id, Name: "Sick", Description: "Sick leave", MaxDays: 12}
	}

	t.Run("identical values report no change", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(stored(), nil)

		res, err := deps.service.Update(ctx, id.String(), leavetype.UpdateLeaveTypeRequest{
			Name: "Sick", Description: "Sick leave", MaxDays: intPtr(12),
		})

		assert.NoError(t, err)
		assert.False(t, res.Changed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(stored(), nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, lt *leavetype.LeaveType) error {
				assert.Equal(t, 15, lt.MaxDays)
				return nil
			})
		deps.redisMock.ExpectDel(leavetype.AllKey).SetVal(1)

		res, err := deps.service.Update(ctx, id.String(), leavetype.UpdateLeaveTypeRequest{
			Name: "Sick", Description: "Sick leave", MaxDays: intPtr(15),
		})

		assert.NoError(t, err)
		assert.True(t, res.Changed)
		assert.Equal(t, 15, res.LeaveType.MaxDays)
	})

	t.Run("rename onto existing name", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(stored(), nil)
		deps.repo.EXPECT().FindByName(ctx, "Annual").Return(&leavetype.LeaveType{ID: uuid.New(), Name: "Annual"}, nil)

		_, err := deps.service.Update(ctx, id.String(), leavetype.UpdateLeaveTypeRequest{
			Name: "Annual", MaxDays: intPtr(12),
		})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNameExists)
	})

	t.Run("missing", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), leavetype.UpdateLeaveTypeRequest{Name: "X", MaxDays: intPtr(1)})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
	})
}

func TestLeaveTypeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&leavetype.LeaveType{}, nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(int64(1), nil)
		deps.redisMock.ExpectDel(leavetype.AllKey).SetVal(1)

		err := deps.service.Delete(ctx, id)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
	})
}
