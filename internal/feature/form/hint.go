package form

import (
	"strings"
	"unicode"
)

// Hint is a best-effort keyword guess at what a feedback message is about.
// It has no accuracy contract and never affects validation.
type Hint struct {
	Topic      string `json:"topic,omitempty"`
	Sentiment  string `json:"sentiment,omitempty"`
	BestEffort bool   `json:"bestEffort"`
}

var (
	topicWords = map[string][]string{
		"bug":     {"bug", "error", "crash", "broken", "fails", "issue"},
		"feature": {"feature", "add", "wish", "would", "request", "support"},
		"billing": {"billing", "invoice", "charge", "charged", "refund", "price", "payment"},
	}
	positiveWords = []string{"great", "love", "good", "thanks", "awesome", "excellent", "nice", "helpful"}
	negativeWords = []string{"bad", "hate", "terrible", "slow", "awful", "annoying", "worst", "broken"}
)

// SuggestHint returns nil when no keyword matched.
func SuggestHint(message string) *Hint {
	words := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	if len(words) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		seen[w] = true
	}

	h := &Hint{BestEffort: true}
	best := 0
	for _, topic := range []string{"bug", "feature", "billing"} {
		if n := countHits(seen, topicWords[topic]); n > best {
			best, h.Topic = n, topic
		}
	}

	pos, neg := countHits(seen, positiveWords), countHits(seen, negativeWords)
	switch {
	case pos > neg:
		h.Sentiment = "positive"
	case neg > pos:
		h.Sentiment = "negative"
	case pos > 0:
		h.Sentiment = "neutral"
	}

	if h.Topic == "" && h.Sentiment == "" {
		return nil
	}
	return h
}

func countHits(seen map[string]bool, words []string) int {
	n := 0
	for _, w := range words {
		if seen[w] {
			n++
		}
	}
	return n
}
