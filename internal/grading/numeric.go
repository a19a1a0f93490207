package grading

import (
	"math"
	"strconv"
	"strings"
)

// numericGrader scores numeric answers by exact string match or by numeric
// comparison within rubric tolerances. Full marks or zero, no partial credit.
//
// Examples:
//
//	Rubric{Tolerance: 0.01}      // |student - expected| <= 0.01
//	Rubric{RelTolerance: 0.05}   // within 5% of the expected value
type numericGrader struct{}

func (numericGrader) Grade(req Request) (Result, error) {
	student := strings.TrimSpace(req.StudentAnswer)
	expected := strings.TrimSpace(req.ExpectedAnswer)

	sv, sOK := parseFloatLoose(student)
	ev, eOK := parseFloatLoose(expected)

	correct := student != "" && student == expected
	if !correct && sOK && eOK {
		absTol, relTol := 0.0, 0.0
		if req.Rubric != nil {
			absTol = req.Rubric.Tolerance
			relTol = req.Rubric.RelTolerance
		}
		diff := math.Abs(sv - ev)
		correct = diff <= absTol || (relTol > 0 && diff <= relTol*math.Abs(ev))
	}

	score := 0.0
	feedback := "Incorrect. Expected: " + expected
	if correct {
		score = req.MaxMarks
		feedback = "Correct!"
	}

	details := map[string]interface{}{
		"strategy":        "numeric",
		"is_correct":      correct,
		"student_answer":  student,
		"expected_answer": expected,
	}
	if sOK {
		details["student_value"] = sv
	}
	if eOK {
		details["expected_value"] = ev
	}

	return Result{Score: score, Feedback: feedback, Details: details}, nil
}

// parseFloatLoose parses a float, tolerating trailing units ("9.81 m/s2").
func parseFloatLoose(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if sp := strings.Fields(s); len(sp) > 0 {
		if v, err := strconv.ParseFloat(sp[0], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
