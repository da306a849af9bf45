package service

import (
	"context"
	"errors"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"gin-task-forms/internal/core/auth"
	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/feature/user"
	"gin-task-forms/pkg/utils"
)

type UserService struct {
	users       domain.UserRepository
	jwter       *auth.JWTer
	log         *zap.Logger
	hashCost    int
	adminEmails []string
}

type UserOption func(*UserService)

func WithHashCost(cost int) UserOption { return func(s *UserService) { s.hashCost = cost } }

// WithAdminEmails grants the admin role to these addresses at registration.
func WithAdminEmails(emails ...string) UserOption {
	return func(s *UserService) { s.adminEmails = emails }
}

func NewUserService(users domain.UserRepository, jwter *auth.JWTer, l *zap.Logger, opts ...UserOption) *UserService {
	s := &UserService{users: users, jwter: jwter, log: l, hashCost: utils.DefaultCost}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type RegisterResult struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

func (s *UserService) Register(ctx context.Context, fields map[string]any) (RegisterResult, error) {
	rec, err := user.RegisterRules.Apply(fields)
	if err != nil {
		return RegisterResult{}, err
	}
	email := rec.String("email")

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("register: lookup failed", zap.Error(err))
		return RegisterResult{}, domain.Upstream("Registration failed.", err)
	}
	if existing != nil {
		return RegisterResult{}, domain.Conflict("Email is already registered.")
	}

	hash, err := utils.HashPassword(rec.String("password"), s.hashCost)
	if err != nil {
		return RegisterResult{}, domain.Upstream("Registration failed.", err)
	}
	role := domain.RoleUser
	if slices.Contains(s.adminEmails, email) {
		role = domain.RoleAdmin
	}
	u := &domain.User{Name: rec.String("name"), Email: email, PasswordHash: hash, Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		var ce *domain.ConflictError
		if errors.As(err, &ce) {
			return RegisterResult{}, err
		}
		s.log.Error("register: insert failed", zap.Error(err))
		return RegisterResult{}, domain.Upstream("Registration failed.", err)
	}

	s.log.Info("user registered", zap.Int64("user_id", u.ID), zap.String("role", u.Role))
	return RegisterResult{
		Message: "User registered successfully.",
		User:    UserSummary{ID: u.ID, Name: u.Name, Email: u.Email},
	}, nil
}

func (s *UserService) Login(ctx context.Context, fields map[string]any) (LoginResult, error) {
	rec, err := user.LoginRules.Apply(fields)
	if err != nil {
		return LoginResult{}, err
	}

	u, err := s.users.FindByEmail(ctx, rec.String("email"))
	if err != nil {
		s.log.Error("login: lookup failed", zap.Error(err))
		return LoginResult{}, domain.Upstream("Login failed.", err)
	}
	if u == nil || !utils.CheckPassword(rec.String("password"), u.PasswordHash) {
		return LoginResult{}, domain.Unauthorized("Invalid credentials.")
	}

	tok, err := s.jwter.Issue(domain.Identity{ID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		return LoginResult{}, domain.Upstream("Login failed.", err)
	}
	return LoginResult{Token: tok, User: UserSummary{ID: u.ID, Email: u.Email}}, nil
}

func (s *UserService) Me(ctx context.Context, id domain.Identity) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id.ID)
	if err != nil {
		return nil, domain.Upstream("Failed to load user.", err)
	}
	if u == nil {
		return nil, domain.NotFound("User", strconv.FormatInt(id.ID, 10))
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, q string, withDeleted bool, offset, limit int) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, total, err := s.users.List(ctx, q, withDeleted, offset, limit)
	if err != nil {
		return nil, 0, domain.Upstream("Failed to list users.", err)
	}
	return users, total, nil
}

// Ban soft-deletes the user; their submissions stay in place.
func (s *UserService) Ban(ctx context.Context, id int64) error {
	ok, err := s.users.SoftDelete(ctx, id)
	if err != nil {
		return domain.Upstream("Failed to ban user.", err)
	}
	if !ok {
		return domain.NotFound("User", strconv.FormatInt(id, 10))
	}
	s.log.Info("user banned", zap.Int64("user_id", id))
	return nil
}
