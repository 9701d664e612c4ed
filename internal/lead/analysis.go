package lead

import (
	"context"
	"strings"
	"unicode/utf8"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Label is the French display label used in the admin email.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "🟢 Faible"
	case PriorityHigh:
		return "🔴 Élevé"
	default:
		return "🟡 Moyen"
	}
}

type Analysis struct {
	Summary  string   `json:"summary"`
	Priority Priority `json:"priority"`
}

type Analyzer interface {
	Analyze(ctx context.Context, details string) (Analysis, error)
}

const summaryExcerpt = 100

var (
	highKeywords = []string{"urgent", "rapidement", "asap"}
	lowKeywords  = []string{"réflexion", "éventuellement"}
)

// KeywordAnalysis is the deterministic stand-in used when the model is
// unavailable.
func KeywordAnalysis(details string) Analysis {
	lower := strings.ToLower(details)

	priority := PriorityMedium
	switch {
	case containsAny(lower, highKeywords):
		priority = PriorityHigh
	case containsAny(lower, lowKeywords):
		priority = PriorityLow
	}

	return Analysis{
		Summary:  "Demande concernant l'automatisation IA. Détails: " + excerpt(details, summaryExcerpt) + "...",
		Priority: priority,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// excerpt cuts s to at most n runes.
func excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
