package service

import (
	"errors"
	"fmt"

	"barprep_backend/internal/model"
	"barprep_backend/internal/repository"
	"barprep_backend/internal/util"
	"barprep_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	weakAreaMasteryCeiling = 60
	weakAreaMinQuestions   = 3
)

// RecommendationService derives study recommendations from the
// per-subject aggregates and tracks their completion.
type RecommendationService struct {
	recRepo *repository.RecommendationRepository
}

func NewRecommendationService(recRepo *repository.RecommendationRepository) *RecommendationService {
	return &RecommendationService{recRepo: recRepo}
}

// RefreshForSubject reconciles the open weak-area recommendation for
// one subject against its updated aggregate. A subject qualifies once
// it has enough answered questions and mastery below the ceiling; the
// open recommendation's priority tracks how far below.
func (s *RecommendationService) RefreshForSubject(row *model.UserAnalytics) error {
	if row.TotalQuestions < weakAreaMinQuestions || row.MasteryLevel >= weakAreaMasteryCeiling {
		return nil
	}

	priority := weakAreaPriority(row.MasteryLevel)

	existing, err := s.recRepo.FindOpenBySubject(row.UserID, model.RecommendationWeakArea, row.Subject)
	if err == nil {
		if existing.Priority == priority {
			return nil
		}
		existing.Priority = priority
		return s.recRepo.Update(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	rec := &model.StudyRecommendation{
		UserID:   row.UserID,
		Type:     model.RecommendationWeakArea,
		Subject:  row.Subject,
		Priority: priority,
		Content: fmt.Sprintf("Your %s mastery is at %.0f%%. Focus your next practice sessions here until it passes %d%%.",
			row.Subject, row.MasteryLevel, weakAreaMasteryCeiling),
	}
	if err := s.recRepo.Create(rec); err != nil {
		return err
	}
	logger.Log.Info("weak-area recommendation created",
		zap.Uint("user_id", row.UserID),
		zap.String("subject", row.Subject),
		zap.Int("priority", priority))
	return nil
}

// weakAreaPriority scales 1..5 with distance below the ceiling.
func weakAreaPriority(mastery float64) int {
	p := 1 + int((weakAreaMasteryCeiling-mastery)/15)
	if p > 5 {
		return 5
	}
	if p < 1 {
		return 1
	}
	return p
}

func (s *RecommendationService) ListOpen(userID uint) ([]model.StudyRecommendation, error) {
	return s.recRepo.ListOpenByUser(userID)
}

// Complete marks a recommendation done. Completing one that is already
// done is rejected so the client notices stale state.
func (s *RecommendationService) Complete(id string) (*model.StudyRecommendation, error) {
	rec, err := s.recRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if rec.Completed {
		return nil, util.ErrRecommendationClosed
	}
	if err := s.recRepo.MarkCompleted(id); err != nil {
		return nil, err
	}
	rec.Completed = true
	return rec, nil
}
