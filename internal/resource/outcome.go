package resource

import (
	"errors"

	"gin-task-forms/internal/domain"
)

type Op int

const (
	OpCreate Op = iota + 1
	OpRead
	OpUpdate
	OpDelete
	OpList
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpRead:
		return "read"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpList:
		return "list"
	}
	return "unknown"
}

// Request is one operation against a resource. ID is ignored by create and
// list, Fields by read, delete and list.
type Request struct {
	Op     Op
	ID     int64
	Fields map[string]any
}

type Kind int

const (
	KindCreated Kind = iota + 1
	KindOK
	KindDeleted
	KindRejected
	KindNotFound
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindCreated:
		return "created"
	case KindOK:
		return "ok"
	case KindDeleted:
		return "deleted"
	case KindRejected:
		return "rejected"
	case KindNotFound:
		return "not_found"
	case KindFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the transport-independent result of a Request. Exactly one of
// Entity or Items is meaningful for successful kinds; Reason is set for the
// others. Err keeps the underlying cause for logs and is never shown.
type Outcome struct {
	Kind   Kind
	Entity any
	Items  []any
	Reason string
	Err    error
}

func Created(e any) Outcome { return Outcome{Kind: KindCreated, Entity: e} }

func OK(e any) Outcome { return Outcome{Kind: KindOK, Entity: e} }

func Deleted(e any) Outcome { return Outcome{Kind: KindDeleted, Entity: e} }

func Rejected(reason string) Outcome { return Outcome{Kind: KindRejected, Reason: reason} }

func NotFound(reason string) Outcome { return Outcome{Kind: KindNotFound, Reason: reason} }

func Listed(items []any) Outcome {
	if items == nil {
		items = []any{}
	}
	return Outcome{Kind: KindOK, Items: items}
}

func Failed(reason string, err error) Outcome {
	return Outcome{Kind: KindFailed, Reason: reason, Err: err}
}

func (o Outcome) IsList() bool { return o.Items != nil }

func (o Outcome) Succeeded() bool {
	return o.Kind == KindCreated || o.Kind == KindOK || o.Kind == KindDeleted
}

const internalReason = "Internal error."

// FromError maps the domain error taxonomy onto an Outcome.
func FromError(err error) Outcome {
	var (
		ve *domain.ValidationError
		nf *domain.NotFoundError
		ue *domain.UpstreamError
	)
	switch {
	case errors.As(err, &ve):
		return Rejected(ve.Reason)
	case errors.As(err, &nf):
		return NotFound(nf.Error())
	case errors.As(err, &ue):
		return Failed(ue.Msg, err)
	default:
		return Failed(internalReason, err)
	}
}
