package repository

import (
	"barprep_backend/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

func (r *ResponseRepository) Create(resp *model.QuestionResponse) error {
	return r.DB.Create(resp).Error
}

func (r *ResponseRepository) ListBySession(sessionID string) ([]model.QuestionResponse, error) {
	var responses []model.QuestionResponse
	err := r.DB.Where("session_id = ?", sessionID).
		Order("question_number ASC").
		Find(&responses).Error
	return responses, err
}

func (r *ResponseRepository) ExistsForQuestion(sessionID string, questionNumber int) (bool, error) {
	var count int64
	err := r.DB.Model(&model.QuestionResponse{}).
		Where("session_id = ? AND question_number = ?", sessionID, questionNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *ResponseRepository) CountBySession(sessionID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuestionResponse{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

func (r *ResponseRepository) AverageScoreBySession(sessionID string) (float64, error) {
	var avg *float64
	err := r.DB.Model(&model.QuestionResponse{}).
		Where("session_id = ?", sessionID).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
