package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barprep_backend/internal/llm"
	"barprep_backend/internal/llm/prompts"
	"barprep_backend/internal/model"
	"barprep_backend/pkg/monitoring"
)

// gradingTimeout is the single fixed wrapper around a grading call.
// Exceeding it is a hard failure, not a retry trigger.
const gradingTimeout = 60 * time.Second

const (
	questionMaxTokens = 1200
	gradingMaxTokens  = 800
	chatMaxTokens     = 1000
)

// AIService is the content-provider adapter. It selects a backend from
// the registry, builds the instruction payload for the requested kind,
// extracts a JSON object from the raw reply, and validates it against
// the expected result shape. Any failure is terminal for the call.
type AIService struct {
	registry *llm.Registry
}

func NewAIService(registry *llm.Registry) *AIService {
	return &AIService{registry: registry}
}

// GeneratedQuestion is the normalized question shape.
type GeneratedQuestion struct {
	Question      string             `json:"question"`
	Options       []string           `json:"options,omitempty"`
	CorrectAnswer string             `json:"correctAnswer"`
	Explanation   string             `json:"explanation"`
	Subject       string             `json:"subject"`
	QuestionType  model.QuestionType `json:"questionType"`
}

// GradingVerdict is the normalized grading shape.
type GradingVerdict struct {
	Score         float64  `json:"score"`
	Feedback      string   `json:"feedback"`
	Strengths     []string `json:"strengths,omitempty"`
	Improvements  []string `json:"improvements,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
}

// GenerateQuestion asks the given backend for one question.
func (s *AIService) GenerateQuestion(ctx context.Context, providerID string, questionType model.QuestionType, subject, difficulty string) (*GeneratedQuestion, error) {
	provider, err := s.registry.Get(providerID)
	if err != nil {
		return nil, err
	}

	if difficulty == "" {
		difficulty = "medium"
	}

	start := time.Now()
	resp, err := provider.Complete(ctx, llm.Request{
		System: prompts.QuestionSystem(),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompts.Question(prompts.QuestionParams{
				QuestionType: string(questionType),
				Subject:      subject,
				Difficulty:   difficulty,
			})},
		},
		MaxTokens:   questionMaxTokens,
		Temperature: 0.8,
	})
	monitoring.ObserveProviderCall(providerID, "question", start, err)
	if err != nil {
		return nil, err
	}

	raw, err := llm.ExtractJSONObject(resp.Text)
	if err != nil {
		return nil, err
	}

	if err := validateShape(questionSchema, raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Text, Err: err}
	}

	var q GeneratedQuestion
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Text, Err: err}
	}
	q.QuestionType = questionType
	if q.Subject == "" {
		q.Subject = subject
	}

	return &q, nil
}

// GradeAnswer asks the given backend to grade one answer. Written kinds
// (short-answer, essay) use the calibration grading variant.
func (s *AIService) GradeAnswer(ctx context.Context, providerID string, questionType model.QuestionType, questionText, userAnswer, correctAnswer string) (*GradingVerdict, error) {
	provider, err := s.registry.Get(providerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, gradingTimeout)
	defer cancel()

	start := time.Now()
	resp, err := provider.Complete(ctx, llm.Request{
		System: prompts.GradingSystem(string(questionType)),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompts.Grading(prompts.GradingParams{
				QuestionType:  string(questionType),
				QuestionText:  questionText,
				UserAnswer:    userAnswer,
				CorrectAnswer: correctAnswer,
			})},
		},
		MaxTokens:   gradingMaxTokens,
		Temperature: 0.2,
	})
	monitoring.ObserveProviderCall(providerID, "grading", start, err)
	if err != nil {
		return nil, err
	}

	raw, err := llm.ExtractJSONObject(resp.Text)
	if err != nil {
		return nil, err
	}

	if err := validateShape(verdictSchema, raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Text, Err: err}
	}

	var v GradingVerdict
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Text, Err: err}
	}

	if v.Score < 0 {
		v.Score = 0
	}
	if v.Score > 100 {
		v.Score = 100
	}

	return &v, nil
}

// Chat runs one tutoring turn and returns the reply text verbatim.
func (s *AIService) Chat(ctx context.Context, providerID, message, contextTag string) (string, error) {
	provider, err := s.registry.Get(providerID)
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := provider.Complete(ctx, llm.Request{
		System: prompts.ChatSystem(contextTag),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: message},
		},
		MaxTokens:   chatMaxTokens,
		Temperature: 0.7,
	})
	monitoring.ObserveProviderCall(providerID, "chat", start, err)
	if err != nil {
		return "", err
	}

	if resp.Text == "" {
		return "", &llm.ErrInvalidResponse{Err: fmt.Errorf("empty chat reply")}
	}

	return resp.Text, nil
}

// Providers lists the registered backend ids.
func (s *AIService) Providers() []string {
	return s.registry.Names()
}
