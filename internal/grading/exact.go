package grading

import "strings"

// exactMatchGrader scores discrete-choice answers (MCQ, true/false) by
// case- and whitespace-insensitive equality. No tokenization, no stop words,
// no partial credit.
type exactMatchGrader struct{}

func (exactMatchGrader) Grade(req Request) (Result, error) {
	student := strings.ToLower(strings.TrimSpace(req.StudentAnswer))
	expected := strings.ToLower(strings.TrimSpace(req.ExpectedAnswer))

	correct := student == expected
	score := 0.0
	feedback := "Incorrect. Expected: " + expected
	if correct {
		score = req.MaxMarks
		feedback = "Correct!"
	}

	return Result{
		Score:    score,
		Feedback: feedback,
		Details: map[string]interface{}{
			"strategy":        "mcq",
			"is_correct":      correct,
			"student_answer":  student,
			"expected_answer": expected,
		},
	}, nil
}
