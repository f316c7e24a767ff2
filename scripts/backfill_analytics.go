// Rebuilds the per-(user, subject) analytics rollups from the recorded
// question responses. Normally the rollups are maintained incrementally
// as answers are graded; this script exists for recovery after a manual
// data import or a bug that left the counters out of sync.
//
// Usage: go run scripts/backfill_analytics.go

package main

import (
	"log"
	"time"

	"barprep_backend/internal/config"
	"barprep_backend/internal/model"
	"barprep_backend/pkg/database"
	"barprep_backend/pkg/logger"

	"gorm.io/gorm/clause"
)

type rollup struct {
	UserID         uint
	Subject        string
	TotalQuestions int
	CorrectAnswers int
	LastPracticed  time.Time
}

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var rollups []rollup
	err = db.Raw(`
		SELECT ts.user_id              AS user_id,
		       qr.subject              AS subject,
		       COUNT(*)                AS total_questions,
		       SUM(qr.is_correct)      AS correct_answers,
		       MAX(qr.created_at)      AS last_practiced
		FROM question_responses qr
		JOIN test_sessions ts ON ts.id = qr.session_id
		WHERE qr.subject <> ''
		GROUP BY ts.user_id, qr.subject
	`).Scan(&rollups).Error
	if err != nil {
		log.Fatalf("Failed to aggregate responses: %v", err)
	}

	for _, r := range rollups {
		row := model.UserAnalytics{
			UserID:         r.UserID,
			Subject:        r.Subject,
			TotalQuestions: r.TotalQuestions,
			CorrectAnswers: r.CorrectAnswers,
			AverageScore:   float64(r.CorrectAnswers) * 100 / float64(r.TotalQuestions),
			MasteryLevel:   float64(r.CorrectAnswers) * 100 / float64(r.TotalQuestions),
			LastPracticed:  r.LastPracticed,
		}
		err = db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "subject"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_questions", "correct_answers", "average_score", "mastery_level", "last_practiced",
			}),
		}).Create(&row).Error
		if err != nil {
			log.Fatalf("Failed to upsert analytics for user %d subject %s: %v", r.UserID, r.Subject, err)
		}
	}

	log.Printf("Backfilled %d analytics rows", len(rollups))
}
