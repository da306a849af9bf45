package repo

import (
	"context"

	"gorm.io/gorm"

	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/feature/submission"
	"gin-task-forms/internal/feature/user"
)

type SubmissionRepo struct{ db *gorm.DB }

func NewSubmissionRepo(db *gorm.DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

func (r *SubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	m := submission.SubmissionModel{UserID: s.UserID, Title: s.Title, Content: s.Content}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = m.ToDomain()
	return nil
}

// ListByUser returns the owner's submissions, newest first.
func (r *SubmissionRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Submission, error) {
	var ms []submission.SubmissionModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id desc").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Submission, 0, len(ms))
	for i := range ms {
		out = append(out, ms[i].ToDomain())
	}
	return out, nil
}

func (r *SubmissionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&submission.SubmissionModel{}).Count(&n).Error
	return n, err
}

// Migrate creates the users and submissions tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&user.UserModel{}, &submission.SubmissionModel{})
}
