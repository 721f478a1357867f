package recommend

// ProblemRule maps a keyword scanned for in the expert's client-problem text
// to pre-authored guidance.
type ProblemRule struct {
	Keyword            string
	RecommendedProgram string
	TargetAudience     string
}

// Tables holds the rule-based recommendation data. Loaded once at startup
// and immutable thereafter; safe for unsynchronized concurrent reads.
type Tables struct {
	// Lengths maps a weekly time-commitment bucket to a program-length
	// recommendation.
	Lengths map[string]string

	// Ideas maps a method or category key to an ordered list of content
	// ideas. Rows with the same key accumulate in file order.
	Ideas map[string][]string

	// Problems is scanned in file order against the client-problem text;
	// the first matching keyword wins.
	Problems []ProblemRule
}
