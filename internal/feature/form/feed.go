// Package form validates the profile, feedback and registration forms and
// keeps accepted entries in a bounded activity feed.
package form

import (
	"time"

	"gin-task-forms/internal/resource"
	"gin-task-forms/internal/store"
	"gin-task-forms/internal/validate"
)

// FeedCap is the number of entries the activity feed keeps.
const FeedCap = 50

type Entry struct {
	Kind   string
	Fields validate.Record
	Hint   *Hint
}

type View struct {
	ID        int64           `json:"id"`
	Kind      string          `json:"kind"`
	Fields    validate.Record `json:"fields"`
	Hint      *Hint           `json:"hint,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Store = store.Store[Entry]

func NewStore(opts ...store.Option) *Store {
	return store.New[Entry](append([]store.Option{store.WithCap(FeedCap)}, opts...)...)
}

type Feed struct {
	store    *Store
	handlers map[string]*resource.Handler[Entry]
}

func NewFeed(s *Store) *Feed {
	return &Feed{
		store: s,
		handlers: map[string]*resource.Handler[Entry]{
			KindProfile:      resource.NewHandler("Entry", ProfileRules, s, decodeAs(KindProfile), present),
			KindFeedback:     resource.NewHandler("Entry", FeedbackRules, s, decodeFeedback, present),
			KindRegistration: resource.NewHandler("Entry", RegistrationRules, s, decodeRegistration, present),
		},
	}
}

// Submit validates fields for the given form kind and records the entry.
func (f *Feed) Submit(kind string, fields map[string]any) resource.Outcome {
	h, ok := f.handlers[kind]
	if !ok {
		return resource.NotFound("Unknown form.")
	}
	return h.Handle(resource.Request{Op: resource.OpCreate, Fields: fields})
}

// Known reports whether kind names one of the registered forms.
func (f *Feed) Known(kind string) bool {
	_, ok := f.handlers[kind]
	return ok
}

func (f *Feed) List() resource.Outcome {
	return f.handlers[KindProfile].Handle(resource.Request{Op: resource.OpList})
}

func (f *Feed) Clear() int { return f.store.Clear() }

func (f *Feed) Len() int { return f.store.Len() }

func decodeAs(kind string) func(validate.Record) Entry {
	return func(r validate.Record) Entry { return Entry{Kind: kind, Fields: r} }
}

func decodeFeedback(r validate.Record) Entry {
	return Entry{Kind: KindFeedback, Fields: r, Hint: SuggestHint(r.String("message"))}
}

// Passwords are validated but never kept.
func decodeRegistration(r validate.Record) Entry {
	return Entry{Kind: KindRegistration, Fields: r.Without("password")}
}

func present(it store.Item[Entry]) any {
	return View{
		ID:        it.ID,
		Kind:      it.Data.Kind,
		Fields:    it.Data.Fields,
		Hint:      it.Data.Hint,
		CreatedAt: it.CreatedAt,
	}
}
