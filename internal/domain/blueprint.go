package domain

import "time"

// ProblemFocus is the keyword-matched guidance for the client problem the
// expert described: a recommended content focus and its ideal audience.
type ProblemFocus struct {
	RecommendedProgram string
	TargetAudience     string
}

// Recommendation is the rule-based bundle resolved from the lookup tables.
// Length is nil when the time-commitment key has no row; Ideas is empty when
// the category/method key has no row. Neither case is an error.
type Recommendation struct {
	Length  *string
	Ideas   []string
	Problem *ProblemFocus
}

// SummaryLine is one labeled answer in the blueprint's profile summary.
type SummaryLine struct {
	Label string
	Value string
}

// Blueprint is the final assembled document: profile summary, rule-based
// recommendations, generated content, and the optional next-steps pointer.
type Blueprint struct {
	ID             string
	Goal           Goal
	CreatedAt      time.Time
	Summary        []SummaryLine
	Recommendation Recommendation
	Generated      string
	NextSteps      string
	Prompt         string
}
