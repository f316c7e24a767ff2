package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barprep_backend/internal/model"
	"barprep_backend/internal/repository"
	"barprep_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// subjectWeights reflects each subject's share of the exam. Subjects
// outside the table carry the default weight.
var subjectWeights = map[string]float64{
	"constitutional-law":          0.14,
	"contracts":                   0.14,
	"torts":                       0.14,
	"criminal-law":                0.12,
	"evidence":                    0.12,
	"civil-procedure":             0.12,
	"real-property":               0.10,
	"business-associations":       0.07,
	"professional-responsibility": 0.05,
}

const defaultSubjectWeight = 0.05

const (
	overviewCacheTTL       = time.Minute
	overviewRecentSessions = 10
)

// AnalyticsService maintains per-subject aggregates and derives the
// pass probability from them.
type AnalyticsService struct {
	analyticsRepo *repository.AnalyticsRepository
	sessionRepo   *repository.SessionRepository
	redisClient   *redis.Client
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository, sessionRepo *repository.SessionRepository, redisClient *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		sessionRepo:   sessionRepo,
		redisClient:   redisClient,
	}
}

// RecordOutcome folds one graded answer into the (user, subject)
// aggregate and returns the updated row.
func (s *AnalyticsService) RecordOutcome(ctx context.Context, userID uint, subject string, isCorrect bool) (*model.UserAnalytics, error) {
	row, err := s.analyticsRepo.ApplyOutcome(userID, subject, isCorrect)
	if err != nil {
		return nil, err
	}
	s.invalidateOverview(ctx, userID)
	return row, nil
}

// ComputePassProbability derives the headline number from the stored
// aggregates. A user with no aggregates gets 0.
func (s *AnalyticsService) ComputePassProbability(userID uint) (float64, error) {
	rows, err := s.analyticsRepo.ListByUser(userID)
	if err != nil {
		return 0, err
	}
	return PassProbabilityFromRows(rows), nil
}

// PassProbabilityFromRows maps the weighted mastery average onto a
// 0-100 probability. 50% weighted mastery sits at 0, 100% at 100.
func PassProbabilityFromRows(rows []model.UserAnalytics) float64 {
	if len(rows) == 0 {
		return 0
	}

	var weightedSum, totalWeight float64
	for _, row := range rows {
		w := subjectWeight(row.Subject)
		weightedSum += row.MasteryLevel * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}

	p := (weightedSum/totalWeight - 50) * 2
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func subjectWeight(subject string) float64 {
	if w, ok := subjectWeights[subject]; ok {
		return w
	}
	return defaultSubjectWeight
}

// GetOverview assembles the dashboard view: per-subject aggregates,
// pass probability, overall counters, and the most recent sessions.
// The assembled view is cached briefly; any write to the aggregates
// drops the cache entry.
func (s *AnalyticsService) GetOverview(ctx context.Context, userID uint) (*model.AnalyticsOverview, error) {
	if cached := s.cachedOverview(ctx, userID); cached != nil {
		return cached, nil
	}

	rows, err := s.analyticsRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListRecentByUser(userID, overviewRecentSessions)
	if err != nil {
		return nil, err
	}

	var totalQuestions, correctAnswers int
	for _, row := range rows {
		totalQuestions += row.TotalQuestions
		correctAnswers += row.CorrectAnswers
	}
	averageScore := 0.0
	if totalQuestions > 0 {
		averageScore = float64(correctAnswers) * 100 / float64(totalQuestions)
	}

	overview := &model.AnalyticsOverview{
		SubjectAnalytics: rows,
		PassProbability:  PassProbabilityFromRows(rows),
		TotalQuestions:   totalQuestions,
		AverageScore:     averageScore,
		TestSessions:     sessions,
	}

	s.cacheOverview(ctx, userID, overview)
	return overview, nil
}

func overviewCacheKey(userID uint) string {
	return fmt.Sprintf("analytics:overview:%d", userID)
}

func (s *AnalyticsService) cachedOverview(ctx context.Context, userID uint) *model.AnalyticsOverview {
	if s.redisClient == nil {
		return nil
	}
	data, err := s.redisClient.Get(ctx, overviewCacheKey(userID)).Bytes()
	if err != nil {
		return nil
	}
	var overview model.AnalyticsOverview
	if err := json.Unmarshal(data, &overview); err != nil {
		return nil
	}
	return &overview
}

func (s *AnalyticsService) cacheOverview(ctx context.Context, userID uint, overview *model.AnalyticsOverview) {
	if s.redisClient == nil {
		return
	}
	data, err := json.Marshal(overview)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, overviewCacheKey(userID), data, overviewCacheTTL).Err(); err != nil {
		logger.Log.Warn("cache analytics overview", zap.Uint("user_id", userID), zap.Error(err))
	}
}

func (s *AnalyticsService) invalidateOverview(ctx context.Context, userID uint) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, overviewCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("invalidate analytics overview", zap.Uint("user_id", userID), zap.Error(err))
	}
}
