package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_Reply(t *testing.T) {
	m := DefaultMatcher()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "keyword match",
			message: "what are the side effects of this?",
			want:    "Common side effects include nausea and dizziness. Contact your doctor if severe.",
		},
		{
			name:    "case insensitive",
			message: "Tell me about my DIET please",
			want:    "For your condition, recommend low-sugar, high-fiber foods.",
		},
		{
			// Both keywords appear; the earliest listed rule wins, not the
			// longest or most specific match.
			name:    "first match wins",
			message: "what about diet and side effects",
			want:    "Common side effects include nausea and dizziness. Contact your doctor if severe.",
		},
		{
			name:    "no match falls back to default",
			message: "hello there",
			want:    "I'm your health assistant. How can I help you today?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Reply(tt.message))
		})
	}
}

func TestMatcher_OrderedRules(t *testing.T) {
	m := NewMatcher([]Rule{
		{Keyword: "b", Reply: "rule b"},
		{Keyword: "a", Reply: "rule a"},
	}, "none")

	// "ab" matches both; table order decides.
	assert.Equal(t, "rule b", m.Reply("ab"))
	assert.Equal(t, "rule a", m.Reply("a only"))
	assert.Equal(t, "none", m.Reply("zzz"))
}
