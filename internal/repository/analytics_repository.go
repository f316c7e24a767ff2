package repository

import (
	"time"

	"barprep_backend/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// ApplyOutcome records one graded answer against the (user, subject)
// row. The counters are incremented in a single UPDATE whose
// expressions reference only the pre-update row, so two concurrent
// submissions both land; the derived columns are recomputed from the
// stored counters in a second statement inside the same transaction.
// When no row exists one is seeded, and a duplicate-key race on the
// seed falls back to the increment path.
func (r *AnalyticsRepository) ApplyOutcome(userID uint, subject string, isCorrect bool) (*model.UserAnalytics, error) {
	delta := 0
	if isCorrect {
		delta = 1
	}
	now := time.Now()

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := incrementCounters(tx, userID, subject, delta, now)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			seed := &model.UserAnalytics{
				UserID:         userID,
				Subject:        subject,
				TotalQuestions: 1,
				CorrectAnswers: delta,
				AverageScore:   float64(delta) * 100,
				MasteryLevel:   float64(delta) * 100,
				LastPracticed:  now,
			}
			if err := tx.Create(seed).Error; err != nil {
				// Lost the seed race: another request created the row
				// first. Increment instead.
				retry := incrementCounters(tx, userID, subject, delta, now)
				if retry.Error != nil {
					return retry.Error
				}
				if retry.RowsAffected == 0 {
					return err
				}
			} else {
				return nil
			}
		}

		return recomputeDerived(tx, userID, subject)
	})
	if err != nil {
		return nil, err
	}

	return r.Find(userID, subject)
}

func incrementCounters(tx *gorm.DB, userID uint, subject string, delta int, now time.Time) *gorm.DB {
	return tx.Model(&model.UserAnalytics{}).
		Where("user_id = ? AND subject = ?", userID, subject).
		Updates(map[string]interface{}{
			"total_questions": gorm.Expr("total_questions + 1"),
			"correct_answers": gorm.Expr("correct_answers + ?", delta),
			"last_practiced":  now,
		})
}

// recomputeDerived rebuilds averageScore and masteryLevel from the
// counters. The mastery cap at 100 is an identity here: a correctness
// average can never exceed 100.
func recomputeDerived(tx *gorm.DB, userID uint, subject string) error {
	return tx.Model(&model.UserAnalytics{}).
		Where("user_id = ? AND subject = ?", userID, subject).
		Updates(map[string]interface{}{
			"average_score": gorm.Expr("correct_answers * 100.0 / total_questions"),
			"mastery_level": gorm.Expr("correct_answers * 100.0 / total_questions"),
		}).Error
}

func (r *AnalyticsRepository) Find(userID uint, subject string) (*model.UserAnalytics, error) {
	var row model.UserAnalytics
	err := r.DB.Where("user_id = ? AND subject = ?", userID, subject).First(&row).Error
	return &row, err
}

func (r *AnalyticsRepository) ListByUser(userID uint) ([]model.UserAnalytics, error) {
	var rows []model.UserAnalytics
	err := r.DB.Where("user_id = ?", userID).
		Order("subject ASC").
		Find(&rows).Error
	return rows, err
}
