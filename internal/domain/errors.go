package domain

import "fmt"

// ValidationError carries the first rule violation found in a payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError reports an identifier that did not resolve to an entity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return "Not found."
	}
	return e.Resource + " not found."
}

// UpstreamError wraps a failed database or third-party call. Msg is safe to
// show to callers, Err is for logs only.
type UpstreamError struct {
	Msg string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AuthError reports a missing, malformed, invalid or expired credential.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

// ConflictError reports a uniqueness violation such as a registered email.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func Invalid(field, reason string) error { return &ValidationError{Field: field, Reason: reason} }

func NotFound(resource, id string) error { return &NotFoundError{Resource: resource, ID: id} }

func Upstream(msg string, err error) error { return &UpstreamError{Msg: msg, Err: err} }

func Unauthorized(reason string) error { return &AuthError{Reason: reason} }

func Conflict(reason string) error { return &ConflictError{Reason: reason} }
