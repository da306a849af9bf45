package service

import (
	"context"

	"go.uber.org/zap"

	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/feature/submission"
)

type SubmissionService struct {
	subs  domain.SubmissionRepository
	users domain.UserRepository
	log   *zap.Logger
}

func NewSubmissionService(subs domain.SubmissionRepository, users domain.UserRepository, l *zap.Logger) *SubmissionService {
	return &SubmissionService{subs: subs, users: users, log: l}
}

// active 令牌在 TTL 内一直有效；封禁（软删）后的账号不能再读写自己的提交
func (s *SubmissionService) active(ctx context.Context, owner domain.Identity, failMsg string) error {
	u, err := s.users.FindByID(ctx, owner.ID)
	if err != nil {
		s.log.Error("owner lookup failed", zap.Int64("user_id", owner.ID), zap.Error(err))
		return domain.Upstream(failMsg, err)
	}
	if u == nil {
		return domain.Unauthorized("Account is no longer active.")
	}
	return nil
}

func (s *SubmissionService) Create(ctx context.Context, owner domain.Identity, fields map[string]any) (domain.Submission, error) {
	rec, err := submission.Rules.Apply(fields)
	if err != nil {
		return domain.Submission{}, err
	}
	if err := s.active(ctx, owner, "Failed to create submission."); err != nil {
		return domain.Submission{}, err
	}
	sub := domain.Submission{UserID: owner.ID, Title: rec.String("title"), Content: rec.String("content")}
	if err := s.subs.Create(ctx, &sub); err != nil {
		s.log.Error("create submission failed", zap.Int64("user_id", owner.ID), zap.Error(err))
		return domain.Submission{}, domain.Upstream("Failed to create submission.", err)
	}
	return sub, nil
}

// List returns only the owner's submissions, newest first.
func (s *SubmissionService) List(ctx context.Context, owner domain.Identity) ([]domain.Submission, error) {
	if err := s.active(ctx, owner, "Failed to fetch submissions."); err != nil {
		return nil, err
	}
	subs, err := s.subs.ListByUser(ctx, owner.ID)
	if err != nil {
		s.log.Error("list submissions failed", zap.Int64("user_id", owner.ID), zap.Error(err))
		return nil, domain.Upstream("Failed to fetch submissions.", err)
	}
	return subs, nil
}
