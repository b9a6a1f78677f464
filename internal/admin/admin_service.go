package admin

import (
	"context"
	"database/sql"
	"strings"

	adminerrors "github.com/allwinajith/elms/internal/admin/errors"
	autherrors "github.com/allwinajith/elms/internal/auth/errors"
	"github.com/allwinajith/elms/internal/rbac"
	"github.com/allwinajith/elms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateAdminRequest) (AdminResponse, error)
	List(ctx context.Context) ([]AdminResponse, error)
	ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

// TokenIssuer is satisfied by *auth.TokenManager.
type TokenIssuer interface {
	Issue(userID, employeeID, role string) (string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, hasher PasswordHasher, tokens TokenIssuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{db: db, repo: repo, hasher: hasher, tokens: tokens, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAdminRequest) (AdminResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return AdminResponse{}, adminerrors.ErrUsernameRequired
	}
	if req.Password == "" {
		return AdminResponse{}, adminerrors.ErrPasswordRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AdminResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByUsername(ctx, username)
	if err != nil {
		return AdminResponse{}, err
	}
	if existing != nil {
		return AdminResponse{}, adminerrors.ErrUsernameExists
	}

	hash, salt, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return AdminResponse{}, err
	}

	a := &Admin{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
	}
	if err := qtx.Create(ctx, a); err != nil {
		return AdminResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AdminResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("admin created",
		zap.String("admin_id", a.ID.String()),
		zap.String("username", username),
	)
	return mapToResponse(*a), nil
}

func (s *service) List(ctx context.Context) ([]AdminResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AdminResponse, len(items))
	for i, a := range items {
		resp[i] = mapToResponse(a)
	}
	return resp, nil
}

func (s *service) ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error {
	if req.CurrentPassword == "" {
		return adminerrors.ErrCurrentPasswordRequired
	}
	if req.NewPassword == "" {
		return adminerrors.ErrNewPasswordRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return adminerrors.ErrAdminNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := s.hasher.Compare(a.PasswordHash, req.CurrentPassword); err != nil {
		return adminerrors.ErrIncorrectPassword
	}

	hash, salt, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		s.logger.Error("failed to hash new password", zap.Error(err))
		return err
	}

	affected, err := qtx.UpdatePassword(ctx, id, hash, salt)
	if err != nil {
		return err
	}
	if affected == 0 {
		return adminerrors.ErrPasswordUpdateFailed
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("admin password changed", zap.String("admin_id", id))
	return nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	a, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return LoginResponse{}, err
	}
	if a == nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(a.PasswordHash, req.Password); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(a.ID.String(), "", rbac.RoleAdmin)
	if err != nil {
		return LoginResponse{}, err
	}

	s.logger.Info("admin logged in", zap.String("admin_id", a.ID.String()))
	return LoginResponse{AccessToken: token, Admin: mapToResponse(*a)}, nil
}
