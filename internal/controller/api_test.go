package controller

import (
	"fmt"
	"net/http"
	"testing"

	"barprep_backend/internal/llm"
	"barprep_backend/internal/model"
	"barprep_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndFetchSession(t *testing.T) {
	s := newTestServer(t)

	session := s.createSession(t, "diagnostic", 0)
	assert.Equal(t, 20, session.TotalQuestions)
	assert.Equal(t, model.SessionActive, session.Status)

	w := s.do(t, http.MethodGet, "/api/test-sessions/"+session.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched model.TestSession
	decodeData(t, w, &fetched)
	assert.Equal(t, session.ID, fetched.ID)
}

func TestFetchMissingSessionIs404(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/test-sessions/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchSessionReportsSuccess(t *testing.T) {
	s := newTestServer(t)
	session := s.createSession(t, "diagnostic", 0)

	w := s.do(t, http.MethodPatch, "/api/test-sessions/"+session.ID, gin.H{
		"currentQuestionIndex": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
	}
	decodeData(t, w, &body)
	assert.True(t, body.Success)
}

func TestMalformedPayloadIsGeneric500(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/test-sessions", gin.H{"examType": "diagnostic"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	env := decodeEnvelope(t, w)
	assert.NotEmpty(t, env.Message)
}

func TestGenerateQuestionEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.mock.AddResponse(llm.MockResponse{Text: questionReply("contracts")})

	w := s.do(t, http.MethodPost, "/api/generate-question", gin.H{
		"aiProvider":   "mock",
		"questionType": "multiple-choice",
		"subject":      "contracts",
		"difficulty":   "easy",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Question    service.GeneratedQuestion `json:"question"`
		GeneratedBy string                    `json:"generatedBy"`
	}
	decodeData(t, w, &body)
	assert.Equal(t, "mock", body.GeneratedBy)
	assert.Len(t, body.Question.Options, 4)
}

func TestSubmitAnswerEndpoint(t *testing.T) {
	s := newTestServer(t)
	session := s.createSession(t, "diagnostic", 0)
	s.mock.AddResponse(llm.MockResponse{Text: gradingReply(88)})

	w := s.do(t, http.MethodPost, "/api/question-responses", gin.H{
		"sessionId":      session.ID,
		"questionNumber": 1,
		"subject":        "torts",
		"questionText":   "A question",
		"userAnswer":     "An answer",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var result service.SubmitResult
	decodeData(t, w, &result)
	assert.Equal(t, "mock", result.GradedBy)
	assert.Equal(t, 88.0, result.Grading.Score)
	assert.True(t, result.Response.IsCorrect)
}

func TestDuplicateSubmissionIs500(t *testing.T) {
	s := newTestServer(t)
	session := s.createSession(t, "diagnostic", 0)
	s.mock.AddResponse(llm.MockResponse{Text: gradingReply(88)})

	payload := gin.H{
		"sessionId":      session.ID,
		"questionNumber": 1,
		"subject":        "torts",
		"questionText":   "A question",
		"userAnswer":     "An answer",
	}
	w := s.do(t, http.MethodPost, "/api/question-responses", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/api/question-responses", payload)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListResponsesOrdered(t *testing.T) {
	s := newTestServer(t)
	session := s.createSession(t, "diagnostic", 0)

	for i := 0; i < 2; i++ {
		s.mock.AddResponse(llm.MockResponse{Text: gradingReply(75)})
	}
	for _, n := range []int{2, 1} {
		w := s.do(t, http.MethodPost, "/api/question-responses", gin.H{
			"sessionId":      session.ID,
			"questionNumber": n,
			"subject":        "torts",
			"questionText":   "A question",
			"userAnswer":     "An answer",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := s.do(t, http.MethodGet, "/api/test-sessions/"+session.ID+"/responses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var responses []model.QuestionResponse
	decodeData(t, w, &responses)
	require.Len(t, responses, 2)
	assert.Equal(t, 1, responses[0].QuestionNumber)
	assert.Equal(t, 2, responses[1].QuestionNumber)
}

func TestDiagnosticSingleMCEndToEnd(t *testing.T) {
	s := newTestServer(t)
	s.mock.AddResponse(llm.MockResponse{Text: questionReply("contracts")})

	w := s.do(t, http.MethodPost, "/api/diagnostic-tests", gin.H{
		"userId":     1,
		"type":       "single-mc",
		"aiProvider": "mock",
		"subject":    "contracts",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var result service.DiagnosticResult
	decodeData(t, w, &result)
	assert.Equal(t, 1, result.Session.TotalQuestions)
	require.Len(t, result.Questions, 1)
	assert.Equal(t, 1, result.Questions[0].QuestionNumber)
}

func TestUserAnalyticsEndpoint(t *testing.T) {
	s := newTestServer(t)
	session := s.createSession(t, "diagnostic-dev", 0)

	for _, score := range []float64{95, 60, 72} {
		s.mock.AddResponse(llm.MockResponse{Text: gradingReply(score)})
	}
	for n := 1; n <= 3; n++ {
		w := s.do(t, http.MethodPost, "/api/question-responses", gin.H{
			"sessionId":      session.ID,
			"questionNumber": n,
			"subject":        "contracts",
			"questionText":   "A question",
			"userAnswer":     "An answer",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d/analytics", session.UserID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var overview model.AnalyticsOverview
	decodeData(t, w, &overview)
	require.Len(t, overview.SubjectAnalytics, 1)
	assert.Equal(t, 3, overview.SubjectAnalytics[0].TotalQuestions)
	assert.Equal(t, 2, overview.SubjectAnalytics[0].CorrectAnswers)
	assert.InDelta(t, 33.333, overview.PassProbability, 0.01)
	assert.NotEmpty(t, overview.TestSessions)
}

func TestChatEndpointAndHistory(t *testing.T) {
	s := newTestServer(t)
	s.mock.AddResponse(llm.MockResponse{Text: "A reply."})

	w := s.do(t, http.MethodPost, "/api/chat", gin.H{
		"userId":     1,
		"message":    "Explain hearsay",
		"aiProvider": "mock",
		"context":    "evidence",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Message     model.ChatMessage `json:"message"`
		RespondedBy string            `json:"respondedBy"`
	}
	decodeData(t, w, &body)
	assert.Equal(t, "mock", body.RespondedBy)
	assert.Equal(t, "A reply.", body.Message.Response)

	w = s.do(t, http.MethodGet, "/api/users/1/chat-history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history []model.ChatMessage
	decodeData(t, w, &history)
	assert.Len(t, history, 1)
}

func TestRecommendationsEndpoints(t *testing.T) {
	s := newTestServer(t)
	session := s.createSession(t, "diagnostic", 0)

	// Three misses in one subject trip the weak-area refresh.
	for i := 0; i < 3; i++ {
		s.mock.AddResponse(llm.MockResponse{Text: gradingReply(20)})
	}
	for n := 1; n <= 3; n++ {
		w := s.do(t, http.MethodPost, "/api/question-responses", gin.H{
			"sessionId":      session.ID,
			"questionNumber": n,
			"subject":        "evidence",
			"questionText":   "A question",
			"userAnswer":     "An answer",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d/recommendations", session.UserID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recs []model.StudyRecommendation
	decodeData(t, w, &recs)
	require.Len(t, recs, 1)
	assert.Equal(t, "evidence", recs[0].Subject)

	w = s.do(t, http.MethodPatch, "/api/recommendations/"+recs[0].ID+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d/recommendations", session.UserID), nil)
	decodeData(t, w, &recs)
	assert.Empty(t, recs)
}

func TestProviderFailureIsGeneric500(t *testing.T) {
	s := newTestServer(t)
	session := s.createSession(t, "diagnostic", 0)
	s.mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	w := s.do(t, http.MethodPost, "/api/question-responses", gin.H{
		"sessionId":      session.ID,
		"questionNumber": 1,
		"subject":        "torts",
		"questionText":   "A question",
		"userAnswer":     "An answer",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
