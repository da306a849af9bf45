// Package resource orchestrates validation and an in-memory store into
// request outcomes. A rejected or not-found request never touches the store;
// a successful one mutates it exactly once.
package resource

import (
	"errors"
	"strconv"

	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/store"
	"gin-task-forms/internal/validate"
)

type Handler[T any] struct {
	name    string
	rules   validate.Rules
	store   *store.Store[T]
	decode  func(validate.Record) T
	present func(store.Item[T]) any
}

// NewHandler binds a rule table and a store. decode turns a validated record
// into the stored value; present shapes a stored item for callers.
func NewHandler[T any](
	name string,
	rules validate.Rules,
	s *store.Store[T],
	decode func(validate.Record) T,
	present func(store.Item[T]) any,
) *Handler[T] {
	return &Handler[T]{name: name, rules: rules, store: s, decode: decode, present: present}
}

func (h *Handler[T]) Handle(req Request) Outcome {
	switch req.Op {
	case OpCreate:
		rec, err := h.rules.Apply(req.Fields)
		if err != nil {
			return FromError(err)
		}
		return Created(h.present(h.store.Create(h.decode(rec))))

	case OpRead:
		it, err := h.store.Get(req.ID)
		if err != nil {
			return h.notFound(req.ID, err)
		}
		return OK(h.present(it))

	case OpUpdate:
		// 先判存在再校验：缺失的 id 优先报 not found，哪怕载荷也不合法。
		// Get 和 Update 各加一次锁，中间被删除时 Update 仍会返回 ErrNotFound
		if _, err := h.store.Get(req.ID); err != nil {
			return h.notFound(req.ID, err)
		}
		rec, err := h.rules.Apply(req.Fields)
		if err != nil {
			return FromError(err)
		}
		it, err := h.store.Update(req.ID, h.decode(rec))
		if err != nil {
			return h.notFound(req.ID, err)
		}
		return OK(h.present(it))

	case OpDelete:
		it, err := h.store.Delete(req.ID)
		if err != nil {
			return h.notFound(req.ID, err)
		}
		return Deleted(h.present(it))

	case OpList:
		items := h.store.List()
		out := make([]any, 0, len(items))
		for _, it := range items {
			out = append(out, h.present(it))
		}
		return Listed(out)
	}
	return Failed(internalReason, errors.New("resource: unknown op "+req.Op.String()))
}

func (h *Handler[T]) Len() int { return h.store.Len() }

func (h *Handler[T]) notFound(id int64, err error) Outcome {
	if errors.Is(err, store.ErrNotFound) {
		return FromError(domain.NotFound(h.name, strconv.FormatInt(id, 10)))
	}
	return FromError(err)
}
