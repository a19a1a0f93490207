// Package report aggregates per-answer grading results into a submission
// outcome. It sits on the caller side of the grading core: scores arrive
// already marks-scaled and additive, so the total is a plain sum.
package report

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/assessly/autograde/internal/grading"
)

// Grader is the slice of the grading service this package needs.
type Grader interface {
	GradeAnswer(req grading.Request) (grading.Result, error)
}

// Answer is one question on the sheet paired with the student's response.
type Answer struct {
	QuestionID string          `json:"question_id"`
	Request    grading.Request `json:"request"`
}

// AnswerResult is the persisted-shape outcome for one answer.
type AnswerResult struct {
	QuestionID string                 `json:"question_id"`
	Score      float64                `json:"score"`
	MaxMarks   float64                `json:"max_marks"`
	Feedback   string                 `json:"feedback"`
	Details    map[string]interface{} `json:"grading_details"`
}

// Submission is the aggregated outcome of grading one answer sheet.
type Submission struct {
	ID         string         `json:"id"`
	TotalScore float64        `json:"total_score"`
	MaxScore   float64        `json:"max_score"`
	Percentage float64        `json:"percentage"`
	Passed     bool           `json:"passed"`
	Feedback   string         `json:"feedback"`
	Answers    []AnswerResult `json:"detailed_results"`
}

// Grade scores every answer on the sheet and aggregates. passThreshold is the
// passing percentage (0-100); pass/fail is percentage >= threshold. Any
// grading error aborts the sheet: a half-graded submission must not be
// reported as a total.
func Grade(g Grader, answers []Answer, passThreshold float64) (Submission, error) {
	sub := Submission{
		ID:      uuid.NewString(),
		Answers: make([]AnswerResult, 0, len(answers)),
	}
	for _, a := range answers {
		res, err := g.GradeAnswer(a.Request)
		if err != nil {
			return Submission{}, fmt.Errorf("grade question %q: %w", a.QuestionID, err)
		}
		sub.TotalScore += res.Score
		sub.MaxScore += a.Request.MaxMarks
		sub.Answers = append(sub.Answers, AnswerResult{
			QuestionID: a.QuestionID,
			Score:      res.Score,
			MaxMarks:   a.Request.MaxMarks,
			Feedback:   res.Feedback,
			Details:    res.Details,
		})
	}
	if sub.MaxScore > 0 {
		sub.Percentage = round2(sub.TotalScore / sub.MaxScore * 100)
	}
	sub.Passed = sub.Percentage >= passThreshold
	if sub.Passed {
		sub.Feedback = fmt.Sprintf("Congratulations! You passed with %.2f%%", sub.Percentage)
	} else {
		sub.Feedback = fmt.Sprintf("You scored %.2f%%. Passing score is %.2f%%", sub.Percentage, passThreshold)
	}
	return sub, nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
