package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"barprep_backend/internal/model"
	"barprep_backend/internal/repository"
	"barprep_backend/internal/util"
	"barprep_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// correctScoreThreshold converts a 0-100 grading score into the
// correctness flag.
const correctScoreThreshold = 70

// SessionService orchestrates test sessions: creation, answer
// submission and grading, progress tracking, and the completion
// transition.
type SessionService struct {
	sessionRepo  *repository.SessionRepository
	responseRepo *repository.ResponseRepository
	analytics    *AnalyticsService
	recommender  *RecommendationService
	ai           *AIService
}

func NewSessionService(
	sessionRepo *repository.SessionRepository,
	responseRepo *repository.ResponseRepository,
	analytics *AnalyticsService,
	recommender *RecommendationService,
	ai *AIService,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		responseRepo: responseRepo,
		analytics:    analytics,
		recommender:  recommender,
		ai:           ai,
	}
}

type CreateSessionRequest struct {
	UserID         uint           `json:"userId" binding:"required"`
	ExamType       string         `json:"examType" binding:"required"`
	AIProvider     string         `json:"aiProvider" binding:"required"`
	TotalQuestions int            `json:"totalQuestions"`
	Metadata       map[string]any `json:"metadata"`
}

// CreateSession opens a new active session. TotalQuestions defaults
// per exam type when the caller does not override it.
func (s *SessionService) CreateSession(req CreateSessionRequest) (*model.TestSession, error) {
	examType := model.ExamType(req.ExamType)
	if !ValidExamType(examType) {
		return nil, util.ErrInvalidExamType
	}

	total := req.TotalQuestions
	if total <= 0 {
		total = DefaultTotalQuestions(examType)
	}

	metadata := ""
	if len(req.Metadata) > 0 {
		data, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, err
		}
		metadata = string(data)
	}

	session := &model.TestSession{
		UserID:         req.UserID,
		ExamType:       examType,
		AIProvider:     req.AIProvider,
		Status:         model.SessionActive,
		TotalQuestions: total,
		Metadata:       metadata,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	logger.Log.Info("session created",
		zap.String("session_id", session.ID),
		zap.Uint("user_id", session.UserID),
		zap.String("exam_type", string(session.ExamType)),
		zap.Int("total_questions", session.TotalQuestions))
	return session, nil
}

func (s *SessionService) GetSession(id string) (*model.TestSession, error) {
	session, err := s.sessionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	return session, err
}

type UpdateSessionRequest struct {
	Status               *string        `json:"status"`
	CurrentQuestionIndex *int           `json:"currentQuestionIndex"`
	Score                *float64       `json:"score"`
	PassProbability      *float64       `json:"passProbability"`
	Metadata             map[string]any `json:"metadata"`
}

// UpdateSession applies a partial update. Only the whitelisted fields
// are writable; a status change to completed stamps the completion
// time.
func (s *SessionService) UpdateSession(id string, req UpdateSessionRequest) (*model.TestSession, error) {
	if _, err := s.GetSession(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Status != nil {
		status := model.SessionStatus(*req.Status)
		switch status {
		case model.SessionActive, model.SessionCompleted, model.SessionAbandoned:
		default:
			return nil, util.ErrInvalidSessionStatus
		}
		fields["status"] = status
		if status == model.SessionCompleted {
			fields["completed_at"] = time.Now()
		}
	}
	if req.CurrentQuestionIndex != nil {
		fields["current_question_index"] = *req.CurrentQuestionIndex
	}
	if req.Score != nil {
		fields["score"] = *req.Score
	}
	if req.PassProbability != nil {
		fields["pass_probability"] = *req.PassProbability
	}
	if len(req.Metadata) > 0 {
		data, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, err
		}
		fields["metadata"] = string(data)
	}

	if len(fields) > 0 {
		if err := s.sessionRepo.Update(id, fields); err != nil {
			return nil, err
		}
	}
	return s.sessionRepo.FindByID(id)
}

// ListResponses returns the session's answered questions in order.
func (s *SessionService) ListResponses(sessionID string) ([]model.QuestionResponse, error) {
	if _, err := s.GetSession(sessionID); err != nil {
		return nil, err
	}
	return s.responseRepo.ListBySession(sessionID)
}

type GenerateQuestionRequest struct {
	SessionID      string `json:"sessionId"`
	AIProvider     string `json:"aiProvider"`
	QuestionType   string `json:"questionType"`
	Subject        string `json:"subject" binding:"required"`
	Difficulty     string `json:"difficulty"`
	QuestionNumber int    `json:"questionNumber"`
}

// GenerateQuestion produces one question. When bound to a session, the
// provider defaults to the session's and the kind comes from the exam
// schedule at the given position.
func (s *SessionService) GenerateQuestion(ctx context.Context, req GenerateQuestionRequest) (*GeneratedQuestion, string, error) {
	provider := req.AIProvider
	questionType := model.QuestionType(req.QuestionType)

	if req.SessionID != "" {
		session, err := s.GetSession(req.SessionID)
		if err != nil {
			return nil, "", err
		}
		if provider == "" {
			provider = session.AIProvider
		}
		if req.QuestionType == "" && req.QuestionNumber > 0 {
			questionType = ScheduledQuestionType(session.ExamType, req.QuestionNumber)
		}
	}
	if questionType == "" {
		questionType = model.QuestionMultipleChoice
	}

	q, err := s.ai.GenerateQuestion(ctx, provider, questionType, req.Subject, req.Difficulty)
	if err != nil {
		return nil, "", err
	}
	return q, provider, nil
}

type SubmitAnswerRequest struct {
	SessionID        string   `json:"sessionId" binding:"required"`
	QuestionNumber   int      `json:"questionNumber" binding:"required,min=1"`
	QuestionType     string   `json:"questionType"`
	Subject          string   `json:"subject"`
	QuestionText     string   `json:"questionText" binding:"required"`
	Options          []string `json:"options"`
	UserAnswer       string   `json:"userAnswer" binding:"required"`
	CorrectAnswer    string   `json:"correctAnswer"`
	Explanation      string   `json:"explanation"`
	TimeSpentSeconds int      `json:"timeSpentSeconds"`
	AIProvider       string   `json:"aiProvider"`
}

type SubmitResult struct {
	Response         *model.QuestionResponse `json:"response"`
	Grading          *GradingVerdict         `json:"grading"`
	GradedBy         string                  `json:"gradedBy"`
	SessionCompleted bool                    `json:"sessionCompleted"`
}

// SubmitAnswer grades one answer and records it. The flow is strict:
// validate the position, grade through the backend, persist, fold into
// analytics when the question carries a subject, then run the
// completion transition once the last question is in. A grading
// failure leaves no record behind.
func (s *SessionService) SubmitAnswer(ctx context.Context, req SubmitAnswerRequest) (*SubmitResult, error) {
	session, err := s.GetSession(req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionActive {
		return nil, util.ErrSessionNotActive
	}
	if session.TotalQuestions > 0 && req.QuestionNumber > session.TotalQuestions {
		return nil, util.ErrQuestionOutOfRange
	}

	exists, err := s.responseRepo.ExistsForQuestion(session.ID, req.QuestionNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrDuplicateQuestion
	}

	questionType := model.QuestionType(req.QuestionType)
	if questionType == "" {
		questionType = ScheduledQuestionType(session.ExamType, req.QuestionNumber)
	}
	provider := req.AIProvider
	if provider == "" {
		provider = session.AIProvider
	}

	verdict, err := s.ai.GradeAnswer(ctx, provider, questionType, req.QuestionText, req.UserAnswer, req.CorrectAnswer)
	if err != nil {
		return nil, err
	}

	correctAnswer := req.CorrectAnswer
	if correctAnswer == "" {
		correctAnswer = verdict.CorrectAnswer
	}

	options := ""
	if len(req.Options) > 0 {
		data, err := json.Marshal(req.Options)
		if err != nil {
			return nil, err
		}
		options = string(data)
	}

	detail, err := json.Marshal(verdict)
	if err != nil {
		return nil, err
	}

	response := &model.QuestionResponse{
		SessionID:        session.ID,
		QuestionNumber:   req.QuestionNumber,
		QuestionType:     questionType,
		Subject:          req.Subject,
		QuestionText:     req.QuestionText,
		Options:          options,
		UserAnswer:       req.UserAnswer,
		CorrectAnswer:    correctAnswer,
		IsCorrect:        verdict.Score >= correctScoreThreshold,
		Score:            verdict.Score,
		Explanation:      req.Explanation,
		GradingDetail:    string(detail),
		TimeSpentSeconds: req.TimeSpentSeconds,
		AIProvider:       provider,
	}
	if err := s.responseRepo.Create(response); err != nil {
		return nil, err
	}

	if req.Subject != "" {
		row, err := s.analytics.RecordOutcome(ctx, session.UserID, req.Subject, response.IsCorrect)
		if err != nil {
			return nil, err
		}
		if err := s.recommender.RefreshForSubject(row); err != nil {
			logger.Log.Warn("refresh recommendation",
				zap.Uint("user_id", session.UserID),
				zap.String("subject", req.Subject),
				zap.Error(err))
		}
	}

	completed, err := s.advanceProgress(session, req.QuestionNumber)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		Response:         response,
		Grading:          verdict,
		GradedBy:         provider,
		SessionCompleted: completed,
	}, nil
}

// advanceProgress moves the session's question index forward and runs
// the completion transition once every question has an answer.
func (s *SessionService) advanceProgress(session *model.TestSession, questionNumber int) (bool, error) {
	fields := map[string]interface{}{}
	if questionNumber > session.CurrentQuestionIndex {
		fields["current_question_index"] = questionNumber
	}

	count, err := s.responseRepo.CountBySession(session.ID)
	if err != nil {
		return false, err
	}
	completed := session.TotalQuestions > 0 && count >= int64(session.TotalQuestions)

	if completed {
		avg, err := s.responseRepo.AverageScoreBySession(session.ID)
		if err != nil {
			return false, err
		}
		pass, err := s.analytics.ComputePassProbability(session.UserID)
		if err != nil {
			return false, err
		}
		fields["status"] = model.SessionCompleted
		fields["score"] = avg
		fields["pass_probability"] = pass
		fields["completed_at"] = time.Now()

		logger.Log.Info("session completed",
			zap.String("session_id", session.ID),
			zap.Float64("score", avg),
			zap.Float64("pass_probability", pass))
	}

	if len(fields) > 0 {
		if err := s.sessionRepo.Update(session.ID, fields); err != nil {
			return false, err
		}
	}
	return completed, nil
}

type BatchSubmitRequest struct {
	SessionID string                `json:"sessionId" binding:"required"`
	Answers   []SubmitAnswerRequest `json:"answers" binding:"required,min=1"`
}

// SubmitBatch grades deferred answers in question order. Submission
// stops at the first failure; answers already graded stay recorded.
func (s *SessionService) SubmitBatch(ctx context.Context, req BatchSubmitRequest) ([]SubmitResult, error) {
	answers := make([]SubmitAnswerRequest, len(req.Answers))
	copy(answers, req.Answers)
	sort.SliceStable(answers, func(i, j int) bool {
		return answers[i].QuestionNumber < answers[j].QuestionNumber
	})

	results := make([]SubmitResult, 0, len(answers))
	for _, answer := range answers {
		answer.SessionID = req.SessionID
		result, err := s.SubmitAnswer(ctx, answer)
		if err != nil {
			return results, err
		}
		results = append(results, *result)
	}
	return results, nil
}
