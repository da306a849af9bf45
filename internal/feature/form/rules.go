package form

import "gin-task-forms/internal/validate"

const (
	KindProfile      = "profile"
	KindFeedback     = "feedback"
	KindRegistration = "registration"
)

var (
	ContactTimes = []string{"morning", "afternoon", "evening"}
	Topics       = []string{"general", "bug", "feature", "billing"}
	Sentiments   = []string{"positive", "neutral", "negative"}
	Roles        = []string{"Developer", "Designer", "Manager", "Student"}
)

var ProfileRules = validate.Rules{
	{Field: "fullName", Kind: validate.Text, Min: 3, Max: 80, Message: "Full name must be 3-80 characters."},
	{Field: "email", Kind: validate.Email, Message: "Enter a valid email address."},
	{Field: "age", Kind: validate.Int, Min: 13, Max: 120, Message: "Age must be a number between 13 and 120."},
	{Field: "favoriteColor", Kind: validate.Color, Optional: true, Message: "Favorite color must look like #1a2b3c."},
	{Field: "contactTime", Kind: validate.Enum, Allowed: ContactTimes, Message: "Contact time must be one of: morning, afternoon, evening."},
	{Field: "newsletter", Kind: validate.Flag},
}

var FeedbackRules = validate.Rules{
	{Field: "topic", Kind: validate.Enum, Allowed: Topics, Message: "Topic must be one of: general, bug, feature, billing."},
	{Field: "sentiment", Kind: validate.Enum, Allowed: Sentiments, Message: "Sentiment must be one of: positive, neutral, negative."},
	{Field: "rating", Kind: validate.Int, Min: 1, Max: 5, Message: "Rating must be a whole number from 1 to 5."},
	{Field: "message", Kind: validate.Text, Min: 10, Max: 500, Message: "Message must be 10-500 characters."},
}

var RegistrationRules = validate.Rules{
	{Field: "fullName", Kind: validate.FullName, Min: 3, Max: 80, Message: "Enter full name (first and last), at least 3 characters."},
	{Field: "email", Kind: validate.Email, Message: "Enter a valid email address."},
	{Field: "password", Kind: validate.Password, Strength: 4, Message: "Use a stronger password: 8+ chars with upper, lower, number, symbol."},
	{Field: "confirmPassword", Kind: validate.Match, Other: "password", Message: "Passwords do not match."},
	{Field: "age", Kind: validate.Int, Min: 13, Max: 120, Message: "Age must be a number between 13 and 120."},
	{Field: "role", Kind: validate.Enum, Allowed: Roles, Message: "Please choose a role."},
}
