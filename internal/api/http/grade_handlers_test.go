package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	api "github.com/assessly/autograde/internal/api/http"
	"github.com/assessly/autograde/internal/grading"
)

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	api.Mount(r, grading.NewService(), 40)
	return r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGradeAnswerHandler(t *testing.T) {
	h := newTestRouter()
	w := post(t, h, "/grade", `{
		"question_type": "mcq",
		"student_answer": "  FALSE ",
		"expected_answer": "false",
		"max_marks": 5
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	var res grading.Result
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Score != 5 {
		t.Errorf("score = %v, want 5", res.Score)
	}
	if res.Details["strategy"] != "mcq" {
		t.Errorf("strategy = %v, want mcq", res.Details["strategy"])
	}
}

func TestGradeAnswerHandler_UnsupportedType(t *testing.T) {
	h := newTestRouter()
	w := post(t, h, "/grade", `{
		"question_type": "oral_exam",
		"student_answer": "x",
		"expected_answer": "x",
		"max_marks": 5
	}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestGradeAnswerHandler_BadRequests(t *testing.T) {
	h := newTestRouter()
	if w := post(t, h, "/grade", `{not json`); w.Code != http.StatusBadRequest {
		t.Errorf("malformed json: status = %d, want 400", w.Code)
	}
	w := post(t, h, "/grade", `{"question_type":"mcq","student_answer":"a","expected_answer":"a","max_marks":0}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero marks: status = %d, want 400", w.Code)
	}
}

func TestGradeSubmissionHandler(t *testing.T) {
	h := newTestRouter()
	w := post(t, h, "/submissions/grade", `{
		"answers": [
			{"question_id": "q1", "request": {
				"question_type": "mcq",
				"student_answer": "b",
				"expected_answer": "b",
				"max_marks": 5
			}},
			{"question_id": "q2", "request": {
				"question_type": "true_false",
				"student_answer": "true",
				"expected_answer": "false",
				"max_marks": 5
			}}
		]
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	var sub struct {
		TotalScore float64 `json:"total_score"`
		MaxScore   float64 `json:"max_score"`
		Percentage float64 `json:"percentage"`
		Passed     bool    `json:"passed"`
	}
	if err := json.NewDecoder(w.Body).Decode(&sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sub.TotalScore != 5 || sub.MaxScore != 10 || sub.Percentage != 50 {
		t.Errorf("totals = %+v, want 5/10 = 50%%", sub)
	}
	if !sub.Passed {
		t.Error("50% must pass the default 40% threshold")
	}
}
