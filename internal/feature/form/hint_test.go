package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestHint(t *testing.T) {
	cases := []struct {
		msg       string
		topic     string
		sentiment string
	}{
		{"Please add dark mode, I would love it", "feature", "positive"},
		{"I was charged twice, need a refund", "billing", ""},
		{"Great app, thanks!", "", "positive"},
		{"Slow and annoying", "", "negative"},
	}
	for _, tc := range cases {
		h := SuggestHint(tc.msg)
		if assert.NotNil(t, h, tc.msg) {
			assert.Equal(t, tc.topic, h.Topic, tc.msg)
			assert.Equal(t, tc.sentiment, h.Sentiment, tc.msg)
		}
	}

	assert.Nil(t, SuggestHint(""))
	assert.Nil(t, SuggestHint("The quick brown fox"))
}
