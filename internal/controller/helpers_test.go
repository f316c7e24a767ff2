package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barprep_backend/internal/llm"
	"barprep_backend/internal/model"
	"barprep_backend/internal/repository"
	"barprep_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	mock   *llm.MockProvider
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", name)
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

	mock := llm.NewMockProvider()
	registry, err := llm.NewRegistry(context.Background(), llm.Config{})
	require.NoError(t, err)
	registry.Register("mock", mock)

	ai := service.NewAIService(registry)
	analytics := service.NewAnalyticsService(repository.NewAnalyticsRepository(db), repository.NewSessionRepository(db), nil)
	recommender := service.NewRecommendationService(repository.NewRecommendationRepository(db))
	sessions := service.NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewResponseRepository(db),
		analytics,
		recommender,
		ai,
	)
	chat := service.NewChatService(repository.NewChatRepository(db), ai)

	sessionCtrl := NewSessionController(sessions)
	questionCtrl := NewQuestionController(sessions)
	diagnosticCtrl := NewDiagnosticController(sessions)
	analyticsCtrl := NewAnalyticsController(analytics)
	chatCtrl := NewChatController(chat)
	recCtrl := NewRecommendationController(recommender)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/test-sessions", sessionCtrl.Create)
		api.GET("/test-sessions/:id", sessionCtrl.Get)
		api.PATCH("/test-sessions/:id", sessionCtrl.Update)
		api.GET("/test-sessions/:id/responses", sessionCtrl.ListResponses)
		api.POST("/generate-question", questionCtrl.Generate)
		api.POST("/question-responses", questionCtrl.Submit)
		api.POST("/question-responses/batch", questionCtrl.SubmitBatch)
		api.POST("/diagnostic-tests", diagnosticCtrl.Create)
		api.GET("/users/:id/analytics", analyticsCtrl.GetUserAnalytics)
		api.GET("/users/:id/chat-history", chatCtrl.History)
		api.GET("/users/:id/recommendations", recCtrl.List)
		api.POST("/chat", chatCtrl.Chat)
		api.PATCH("/recommendations/:id/complete", recCtrl.Complete)
	}

	return &testServer{router: router, mock: mock, db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// envelope mirrors the response wrapper for assertions.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func (s *testServer) createSession(t *testing.T, examType string, total int) model.TestSession {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/test-sessions", gin.H{
		"userId":         1,
		"examType":       examType,
		"aiProvider":     "mock",
		"totalQuestions": total,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var session model.TestSession
	decodeData(t, w, &session)
	return session
}

func gradingReply(score float64) string {
	return fmt.Sprintf(`{"score": %g, "feedback": "graded", "strengths": [], "improvements": []}`, score)
}

func questionReply(subject string) string {
	return fmt.Sprintf(`{"question": "Is consideration required?", "options": ["A) yes", "B) no", "C) sometimes", "D) never"], "correctAnswer": "A) yes", "explanation": "It is an element.", "subject": "%s"}`, subject)
}
