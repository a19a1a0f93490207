// Package http is the thin transport adapter over the grading core. It
// decodes request JSON, calls the core, and encodes the result; it holds no
// state and persists nothing.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/assessly/autograde/internal/grading"
	"github.com/assessly/autograde/internal/report"
)

type gradeSubmissionReq struct {
	Answers       []report.Answer `json:"answers"`
	PassThreshold *float64        `json:"pass_threshold,omitempty"`
}

// Mount attaches the grading routes to r.
func Mount(r chi.Router, svc *grading.Service, passThreshold float64) {
	r.Post("/grade", GradeAnswerHandler(svc))
	r.Post("/submissions/grade", GradeSubmissionHandler(svc, passThreshold))
}

// POST /grade
func GradeAnswerHandler(svc *grading.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req grading.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		res, err := svc.GradeAnswer(req)
		if err != nil {
			writeGradingError(w, err)
			return
		}
		writeJSON(w, res)
	}
}

// POST /submissions/grade
func GradeSubmissionHandler(svc *grading.Service, defaultThreshold float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gradeSubmissionReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		threshold := defaultThreshold
		if req.PassThreshold != nil {
			threshold = *req.PassThreshold
		}
		sub, err := report.Grade(svc, req.Answers, threshold)
		if err != nil {
			writeGradingError(w, err)
			return
		}
		writeJSON(w, sub)
	}
}

func writeGradingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, grading.ErrUnsupportedType):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, grading.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "grade: "+err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
