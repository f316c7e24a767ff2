package repository

import (
	"barprep_backend/internal/model"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

func (r *RecommendationRepository) Create(rec *model.StudyRecommendation) error {
	return r.DB.Create(rec).Error
}

func (r *RecommendationRepository) FindByID(id string) (*model.StudyRecommendation, error) {
	var rec model.StudyRecommendation
	err := r.DB.First(&rec, "id = ?", id).Error
	return &rec, err
}

// ListOpenByUser returns incomplete recommendations ordered by priority
// (most urgent first), then recency.
func (r *RecommendationRepository) ListOpenByUser(userID uint) ([]model.StudyRecommendation, error) {
	var recs []model.StudyRecommendation
	err := r.DB.Where("user_id = ? AND completed = ?", userID, false).
		Order("priority DESC").
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (r *RecommendationRepository) FindOpenBySubject(userID uint, kind model.RecommendationType, subject string) (*model.StudyRecommendation, error) {
	var rec model.StudyRecommendation
	err := r.DB.Where("user_id = ? AND type = ? AND subject = ? AND completed = ?",
		userID, kind, subject, false).
		First(&rec).Error
	return &rec, err
}

func (r *RecommendationRepository) Update(rec *model.StudyRecommendation) error {
	return r.DB.Save(rec).Error
}

func (r *RecommendationRepository) MarkCompleted(id string) error {
	return r.DB.Model(&model.StudyRecommendation{}).
		Where("id = ?", id).
		Update("completed", true).Error
}
