package chat

import "strings"

// Rule binds a keyword to its canned reply.
type Rule struct {
	Keyword string
	Reply   string
}

// Matcher answers messages from an ordered keyword table. The earliest
// matching keyword wins, regardless of later or longer matches. Pure and
// read-only; safe for concurrent use.
type Matcher struct {
	rules    []Rule
	fallback string
}

// NewMatcher builds a matcher from an ordered rule list and a fallback reply.
func NewMatcher(rules []Rule, fallback string) *Matcher {
	return &Matcher{rules: rules, fallback: fallback}
}

// DefaultMatcher returns the built-in health assistant table.
func DefaultMatcher() *Matcher {
	return NewMatcher([]Rule{
		{Keyword: "side effects", Reply: "Common side effects include nausea and dizziness. Contact your doctor if severe."},
		{Keyword: "diet", Reply: "For your condition, recommend low-sugar, high-fiber foods."},
	}, "I'm your health assistant. How can I help you today?")
}

// Reply performs a case-insensitive substring scan, first match wins.
func (m *Matcher) Reply(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range m.rules {
		if strings.Contains(msg, strings.ToLower(rule.Keyword)) {
			return rule.Reply
		}
	}
	return m.fallback
}
