// Package validate normalizes raw field maps against declarative rule tables.
//
// Rules run in declaration order and the first violation wins; no errors are
// accumulated. A successful run yields a Record holding trimmed strings,
// parsed ints and bools keyed by field name.
package validate

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gin-task-forms/internal/domain"
)

type Kind int

const (
	Text Kind = iota
	Enum
	Int
	Email
	Color
	Flag
	Password
	Match
	FullName
)

// Rule describes one field. Min/Max bound rune length for text kinds and the
// value for Int.
type Rule struct {
	Field    string
	Kind     Kind
	Min      int
	Max      int
	Allowed  []string
	Default  string
	Lower    bool   // Enum: lower-case before the closed-set check
	Optional bool   // empty input yields the zero value instead of a rejection
	Other    string // Match: field whose raw value must be equal
	Trim     bool   // Password/Match: trim before checking; otherwise the raw value is kept
	Strength int    // Password: minimum Score
	Message  string
}

type Rules []Rule

// Email is permissive on purpose: it is not an RFC 5322 check.
var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// CheckboxOn is the value browsers post for a ticked checkbox.
const CheckboxOn = "on"

func (rs Rules) Apply(in map[string]any) (Record, error) {
	out := make(Record, len(rs))
	for _, r := range rs {
		if err := r.apply(in, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r Rule) apply(in map[string]any, out Record) error {
	raw := in[r.Field]
	switch r.Kind {
	case Text, FullName:
		s := strings.TrimSpace(str(raw))
		if s == "" && r.Optional {
			out[r.Field] = ""
			return nil
		}
		n := utf8.RuneCountInString(s)
		if n < r.Min || (r.Max > 0 && n > r.Max) {
			return r.reject()
		}
		if r.Kind == FullName && !strings.ContainsFunc(s, unicode.IsSpace) {
			return r.reject()
		}
		out[r.Field] = s

	case Enum:
		// 只有缺省或空串才取默认值；"   "、数字等照常走集合校验
		s := strings.TrimSpace(str(raw))
		if raw == nil || raw == "" {
			s = r.Default
		}
		if r.Lower {
			s = strings.ToLower(s)
		}
		if s == "" && r.Optional {
			out[r.Field] = ""
			return nil
		}
		if !slices.Contains(r.Allowed, s) {
			return r.reject()
		}
		out[r.Field] = s

	case Int:
		s := strings.TrimSpace(numeric(raw))
		if s == "" && r.Optional {
			out[r.Field] = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < r.Min || v > r.Max {
			return r.reject()
		}
		out[r.Field] = v

	case Email:
		s := strings.ToLower(strings.TrimSpace(str(raw)))
		if s == "" && r.Optional {
			out[r.Field] = ""
			return nil
		}
		if !emailRe.MatchString(s) {
			return r.reject()
		}
		out[r.Field] = s

	case Color:
		s := strings.TrimSpace(str(raw))
		if s == "" && r.Optional {
			out[r.Field] = ""
			return nil
		}
		if !colorRe.MatchString(s) {
			return r.reject()
		}
		out[r.Field] = s

	case Flag:
		switch v := raw.(type) {
		case bool:
			out[r.Field] = v
		default:
			out[r.Field] = str(raw) == CheckboxOn
		}

	case Password:
		s := r.text(raw)
		if utf8.RuneCountInString(s) < r.Min || (r.Max > 0 && utf8.RuneCountInString(s) > r.Max) {
			return r.reject()
		}
		if r.Strength > 0 && Score(s) < r.Strength {
			return r.reject()
		}
		out[r.Field] = s

	case Match:
		if r.text(raw) != r.text(in[r.Other]) {
			return r.reject()
		}
	}
	return nil
}

func (r Rule) text(v any) string {
	if r.Trim {
		return strings.TrimSpace(str(v))
	}
	return str(v)
}

func (r Rule) reject() error {
	msg := r.Message
	if msg == "" {
		msg = fmt.Sprintf("%s is invalid.", r.Field)
	}
	return domain.Invalid(r.Field, msg)
}

// Score rates a password 0-5: length >= 8, upper, lower, digit, symbol.
func Score(pw string) int {
	score := 0
	if utf8.RuneCountInString(pw) >= 8 {
		score++
	}
	var upper, lower, digit, symbol bool
	for _, c := range pw {
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	for _, ok := range []bool{upper, lower, digit, symbol} {
		if ok {
			score++
		}
	}
	return score
}

// FromForm flattens url.Values, keeping the first value of each key.
func FromForm(v url.Values) map[string]any {
	out := make(map[string]any, len(v))
	for k, vals := range v {
		if len(vals) > 0 {
			out[k] = vals[0]
		}
	}
	return out
}

// str treats anything that is not a string as empty.
func str(v any) string {
	s, _ := v.(string)
	return s
}

// numeric also formats JSON numbers so Int rules accept {"age": 34}.
func numeric(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return ""
	}
}
