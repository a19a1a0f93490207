package grading

// Rubric carries optional per-question grading metadata supplied by the
// caller. All fields are optional; a nil Rubric means defaults everywhere.
type Rubric struct {
	// Keywords overrides keyword extraction from the expected answer.
	Keywords []string `json:"keywords,omitempty"`
	// Tolerance is the absolute tolerance for numeric answers.
	Tolerance float64 `json:"tolerance,omitempty"`
	// RelTolerance is the relative tolerance for numeric answers,
	// as a fraction of the expected value (0.05 = 5%).
	RelTolerance float64 `json:"rel_tolerance,omitempty"`
}
