package repository

import (
	"barprep_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.TestSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByID(id string) (*model.TestSession, error) {
	var session model.TestSession
	err := r.DB.First(&session, "id = ?", id).Error
	return &session, err
}

// Update applies a partial update. Fields is a column → value map so
// zero values (index 0, score 0) can still be written explicitly.
func (r *SessionRepository) Update(id string, fields map[string]interface{}) error {
	return r.DB.Model(&model.TestSession{}).Where("id = ?", id).Updates(fields).Error
}

func (r *SessionRepository) ListRecentByUser(userID uint, limit int) ([]model.TestSession, error) {
	var sessions []model.TestSession
	err := r.DB.Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
