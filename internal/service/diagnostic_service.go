package service

import (
	"context"

	"barprep_backend/internal/model"
	"barprep_backend/internal/util"
)

// Diagnostic bootstrap modes. Standard opens the full 20-question
// diagnostic and generates its first question; dev is a 3-question
// variant with one question per kind, generated upfront; single-mc is
// a one-question smoke run.
const (
	DiagnosticStandard = "standard"
	DiagnosticDev      = "dev"
	DiagnosticSingleMC = "single-mc"
)

// diagnosticSubjects is the rotation used when the caller does not pin
// a subject, heaviest-weighted first.
var diagnosticSubjects = []string{
	"constitutional-law",
	"contracts",
	"torts",
	"criminal-law",
	"evidence",
	"civil-procedure",
	"real-property",
	"business-associations",
	"professional-responsibility",
}

type DiagnosticRequest struct {
	UserID     uint   `json:"userId" binding:"required"`
	Type       string `json:"type"`
	AIProvider string `json:"aiProvider" binding:"required"`
	Subject    string `json:"subject"`
	Difficulty string `json:"difficulty"`
}

type DiagnosticQuestion struct {
	QuestionNumber int `json:"questionNumber"`
	GeneratedQuestion
}

type DiagnosticResult struct {
	Session   *model.TestSession   `json:"session"`
	Questions []DiagnosticQuestion `json:"questions"`
}

// StartDiagnostic opens a diagnostic session and generates its opening
// question set per mode. Generation failures abandon the bootstrap but
// keep the already-created session, so the client can retry generation
// against it.
func (s *SessionService) StartDiagnostic(ctx context.Context, req DiagnosticRequest) (*DiagnosticResult, error) {
	mode := req.Type
	if mode == "" {
		mode = DiagnosticStandard
	}

	var examType model.ExamType
	var total, upfront int
	switch mode {
	case DiagnosticStandard:
		examType = model.ExamDiagnostic
		total = DefaultTotalQuestions(examType)
		upfront = 1
	case DiagnosticDev:
		examType = model.ExamDiagnosticDev
		total = DefaultTotalQuestions(examType)
		upfront = total
	case DiagnosticSingleMC:
		examType = model.ExamDiagnosticDev
		total = 1
		upfront = 1
	default:
		return nil, util.ErrInvalidDiagnosticMode
	}

	session, err := s.CreateSession(CreateSessionRequest{
		UserID:         req.UserID,
		ExamType:       string(examType),
		AIProvider:     req.AIProvider,
		TotalQuestions: total,
	})
	if err != nil {
		return nil, err
	}

	questions := make([]DiagnosticQuestion, 0, upfront)
	for n := 1; n <= upfront; n++ {
		subject := req.Subject
		if subject == "" {
			subject = diagnosticSubjects[(n-1)%len(diagnosticSubjects)]
		}
		kind := ScheduledQuestionType(examType, n)

		q, err := s.ai.GenerateQuestion(ctx, req.AIProvider, kind, subject, req.Difficulty)
		if err != nil {
			return nil, err
		}
		questions = append(questions, DiagnosticQuestion{
			QuestionNumber:    n,
			GeneratedQuestion: *q,
		})
	}

	return &DiagnosticResult{Session: session, Questions: questions}, nil
}
