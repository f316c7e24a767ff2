package service

import (
	"context"

	"barprep_backend/internal/model"
	"barprep_backend/internal/repository"
)

const defaultChatHistoryLimit = 50

// ChatService runs tutoring turns against a backend and keeps the
// exchange history.
type ChatService struct {
	chatRepo *repository.ChatRepository
	ai       *AIService
}

func NewChatService(chatRepo *repository.ChatRepository, ai *AIService) *ChatService {
	return &ChatService{chatRepo: chatRepo, ai: ai}
}

type ChatRequest struct {
	UserID     uint   `json:"userId" binding:"required"`
	Message    string `json:"message" binding:"required"`
	AIProvider string `json:"aiProvider" binding:"required"`
	Context    string `json:"context"`
}

// Chat sends one message and persists the exchange. A backend failure
// leaves no record behind.
func (s *ChatService) Chat(ctx context.Context, req ChatRequest) (*model.ChatMessage, error) {
	reply, err := s.ai.Chat(ctx, req.AIProvider, req.Message, req.Context)
	if err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		UserID:     req.UserID,
		Message:    req.Message,
		Response:   reply,
		AIProvider: req.AIProvider,
		Context:    req.Context,
	}
	if err := s.chatRepo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// History returns the user's most recent exchanges, newest first.
func (s *ChatService) History(userID uint, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultChatHistoryLimit
	}
	return s.chatRepo.ListByUser(userID, limit)
}
