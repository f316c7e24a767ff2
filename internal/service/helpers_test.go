package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"barprep_backend/internal/llm"
	"barprep_backend/internal/model"
	"barprep_backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.TestSession{},
		&model.QuestionResponse{},
		&model.UserAnalytics{},
		&model.ChatMessage{},
		&model.StudyRecommendation{},
	))
	return db
}

type testEnv struct {
	db          *gorm.DB
	mock        *llm.MockProvider
	ai          *AIService
	analytics   *AnalyticsService
	recommender *RecommendationService
	sessions    *SessionService
	chat        *ChatService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)

	mock := llm.NewMockProvider()
	registry, err := llm.NewRegistry(context.Background(), llm.Config{})
	require.NoError(t, err)
	registry.Register("mock", mock)

	ai := NewAIService(registry)
	analytics := NewAnalyticsService(repository.NewAnalyticsRepository(db), repository.NewSessionRepository(db), nil)
	recommender := NewRecommendationService(repository.NewRecommendationRepository(db))
	sessions := NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewResponseRepository(db),
		analytics,
		recommender,
		ai,
	)
	chat := NewChatService(repository.NewChatRepository(db), ai)

	return &testEnv{
		db:          db,
		mock:        mock,
		ai:          ai,
		analytics:   analytics,
		recommender: recommender,
		sessions:    sessions,
		chat:        chat,
	}
}

func gradingJSON(score float64) string {
	return fmt.Sprintf(`{"score": %g, "feedback": "graded", "strengths": ["issue spotting"], "improvements": ["cite the controlling rule"], "correctAnswer": "model answer"}`, score)
}

func questionJSON(subject string) string {
	return fmt.Sprintf(`{"question": "Which right does the First Amendment protect?", "options": ["A) speech", "B) quartering", "C) bail", "D) jury"], "correctAnswer": "A) speech", "explanation": "Speech is the core protection.", "subject": "%s"}`, subject)
}

func (e *testEnv) createSession(t *testing.T, examType string, total int) *model.TestSession {
	t.Helper()
	session, err := e.sessions.CreateSession(CreateSessionRequest{
		UserID:         1,
		ExamType:       examType,
		AIProvider:     "mock",
		TotalQuestions: total,
	})
	require.NoError(t, err)
	return session
}

func submitReq(sessionID string, n int, subject string) SubmitAnswerRequest {
	return SubmitAnswerRequest{
		SessionID:      sessionID,
		QuestionNumber: n,
		Subject:        subject,
		QuestionText:   "question text",
		UserAnswer:     "student answer",
		CorrectAnswer:  "model answer",
	}
}
