package model

import "time"

type ExamType string

const (
	ExamDiagnostic    ExamType = "diagnostic"
	ExamDiagnosticDev ExamType = "diagnostic-dev"
	ExamFull          ExamType = "full-exam"
	ExamDay1          ExamType = "day1"
	ExamDay2          ExamType = "day2"
	ExamDay3          ExamType = "day3"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// TestSession is one sitting of an exam or practice run. Mutated as
// questions are answered (index, status, score); never deleted.
type TestSession struct {
	UUIDBase
	UserID               uint          `gorm:"index;not null" json:"userId"`
	ExamType             ExamType      `gorm:"size:30;not null" json:"examType"`
	AIProvider           string        `gorm:"size:30;not null" json:"aiProvider"`
	Status               SessionStatus `gorm:"size:20;default:'active'" json:"status"`
	TotalQuestions       int           `gorm:"default:0" json:"totalQuestions"`
	CurrentQuestionIndex int           `gorm:"default:0" json:"currentQuestionIndex"`
	Score                float64       `gorm:"default:0" json:"score"`
	PassProbability      float64       `gorm:"default:0" json:"passProbability"`
	Metadata             string        `gorm:"type:text" json:"metadata,omitempty"`
	StartedAt            time.Time     `gorm:"autoCreateTime" json:"startedAt"`
	CompletedAt          *time.Time    `json:"completedAt,omitempty"`
}

func (TestSession) TableName() string {
	return "test_sessions"
}
