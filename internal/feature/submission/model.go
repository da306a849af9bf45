package submission

import (
	"time"

	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/validate"
)

// SubmissionModel references its owner by id only; deleting a user does not
// cascade.
type SubmissionModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"index;not null"`
	Title     string    `gorm:"size:120;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SubmissionModel) TableName() string { return "submissions" }

func (m *SubmissionModel) ToDomain() domain.Submission {
	return domain.Submission{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

var Rules = validate.Rules{
	{Field: "title", Kind: validate.Text, Min: 3, Max: 120, Message: "Title must be 3-120 characters."},
	{Field: "content", Kind: validate.Text, Min: 5, Max: 1000, Message: "Content must be 5-1000 characters."},
}
