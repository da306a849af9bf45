package form

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gin-task-forms/internal/resource"
)

func profile() map[string]any {
	return map[string]any{
		"fullName":      "Grace Hopper",
		"email":         "Grace.Hopper@Example.com",
		"age":           "34",
		"favoriteColor": "#1a2b3c",
		"contactTime":   "morning",
		"newsletter":    "on",
	}
}

func TestFeed_Profile(t *testing.T) {
	f := NewFeed(NewStore())

	out := f.Submit(KindProfile, profile())
	require.Equal(t, resource.KindCreated, out.Kind)
	v := out.Entity.(View)
	assert.Equal(t, KindProfile, v.Kind)
	assert.Equal(t, "grace.hopper@example.com", v.Fields.String("email"))
	assert.Equal(t, 34, v.Fields.Int("age"))
	assert.True(t, v.Fields.Bool("newsletter"))

	in := profile()
	delete(in, "newsletter")
	delete(in, "favoriteColor")
	out = f.Submit(KindProfile, in)
	require.Equal(t, resource.KindCreated, out.Kind)
	assert.False(t, out.Entity.(View).Fields.Bool("newsletter"))
}

func TestFeed_ProfileRejected(t *testing.T) {
	cases := map[string]struct {
		key, val, reason string
	}{
		"email":   {"email", "nope", "Enter a valid email address."},
		"age":     {"age", "12", "Age must be a number between 13 and 120."},
		"color":   {"favoriteColor", "blue", "Favorite color must look like #1a2b3c."},
		"contact": {"contactTime", "Morning", "Contact time must be one of: morning, afternoon, evening."},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := NewFeed(NewStore())
			in := profile()
			in[tc.key] = tc.val
			out := f.Submit(KindProfile, in)
			assert.Equal(t, resource.KindRejected, out.Kind)
			assert.Equal(t, tc.reason, out.Reason)
			assert.Equal(t, 0, f.Len())
		})
	}
}

func TestFeed_FeedbackHint(t *testing.T) {
	f := NewFeed(NewStore())

	out := f.Submit(KindFeedback, map[string]any{
		"topic": "general", "sentiment": "neutral", "rating": "2",
		"message": "The app keeps crashing with an error, terrible experience",
	})
	require.Equal(t, resource.KindCreated, out.Kind)
	v := out.Entity.(View)
	require.NotNil(t, v.Hint)
	assert.Equal(t, "bug", v.Hint.Topic)
	assert.Equal(t, "negative", v.Hint.Sentiment)
	assert.True(t, v.Hint.BestEffort)
	// chosen values are kept as submitted
	assert.Equal(t, "general", v.Fields.String("topic"))
}

func TestFeed_RegistrationDropsPassword(t *testing.T) {
	f := NewFeed(NewStore())

	out := f.Submit(KindRegistration, map[string]any{
		"fullName": "Grace Hopper", "email": "grace.hopper@example.com",
		"password": "StrongPass#2026", "confirmPassword": "StrongPass#2026",
		"age": "34", "role": "Developer",
	})
	require.Equal(t, resource.KindCreated, out.Kind)
	fields := out.Entity.(View).Fields
	_, hasPassword := fields["password"]
	assert.False(t, hasPassword)
	assert.Equal(t, "Developer", fields.String("role"))
}

func TestFeed_RegistrationPasswordStrength(t *testing.T) {
	f := NewFeed(NewStore())
	reg := func(pw string) resource.Outcome {
		return f.Submit(KindRegistration, map[string]any{
			"fullName": "Grace Hopper", "email": "grace.hopper@example.com",
			"password": pw, "confirmPassword": pw, "age": "34", "role": "Developer",
		})
	}

	// 7 characters, but upper/lower/digit/symbol reaches a score of 4
	assert.Equal(t, resource.KindCreated, reg("Ab1!xyz").Kind)

	out := reg("abcdefgh")
	assert.Equal(t, resource.KindRejected, out.Kind)
	assert.Equal(t, "Use a stronger password: 8+ chars with upper, lower, number, symbol.", out.Reason)
}

func TestFeed_UnknownKind(t *testing.T) {
	f := NewFeed(NewStore())
	out := f.Submit("survey", nil)
	assert.Equal(t, resource.KindNotFound, out.Kind)
	assert.False(t, f.Known("survey"))
	assert.True(t, f.Known(KindFeedback))
}

func TestFeed_CapAndClear(t *testing.T) {
	f := NewFeed(NewStore())
	for i := 0; i < FeedCap+1; i++ {
		in := profile()
		in["fullName"] = fmt.Sprintf("User %02d", i)
		require.Equal(t, resource.KindCreated, f.Submit(KindProfile, in).Kind)
	}

	out := f.List()
	require.Len(t, out.Items, FeedCap)
	assert.Equal(t, "User 50", out.Items[0].(View).Fields.String("fullName"))
	assert.Equal(t, "User 01", out.Items[FeedCap-1].(View).Fields.String("fullName"))

	assert.Equal(t, FeedCap, f.Clear())
	assert.Empty(t, f.List().Items)
}
