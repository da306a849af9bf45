package domain

import (
	"context"
	"time"
)

type Submission struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubmissionRepository interface {
	Create(ctx context.Context, s *Submission) error
	ListByUser(ctx context.Context, userID int64) ([]Submission, error)
	Count(ctx context.Context) (int64, error)
}
