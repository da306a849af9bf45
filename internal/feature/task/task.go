package task

import (
	"strings"

	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/resource"
	"gin-task-forms/internal/store"
	"gin-task-forms/internal/validate"
)

// Fields is the validated, storable part of a task.
type Fields struct {
	Title       string
	Description string
	Status      string
}

var Rules = validate.Rules{
	{Field: "title", Kind: validate.Text, Min: 3, Max: 80,
		Message: "Title is required and must be 3-80 characters."},
	{Field: "description", Kind: validate.Text, Min: 5, Max: 220,
		Message: "Description is required and must be 5-220 characters."},
	{Field: "status", Kind: validate.Enum, Allowed: domain.TaskStatuses, Default: domain.StatusTodo, Lower: true,
		Message: "Status must be one of: " + strings.Join(domain.TaskStatuses, ", ") + "."},
}

type Store = store.Store[Fields]

func NewStore(opts ...store.Option) *Store { return store.New[Fields](opts...) }

func NewHandler(s *Store) *resource.Handler[Fields] {
	return resource.NewHandler("Task", Rules, s, decode, present)
}

func decode(r validate.Record) Fields {
	return Fields{
		Title:       r.String("title"),
		Description: r.String("description"),
		Status:      r.String("status"),
	}
}

func present(it store.Item[Fields]) any {
	return domain.Task{
		ID:          it.ID,
		Title:       it.Data.Title,
		Description: it.Data.Description,
		Status:      it.Data.Status,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
