package model

import "time"

// UserAnalytics is the per-(user, subject) rollup. Created lazily on the
// first graded response for the subject, updated in place afterwards.
// CorrectAnswers <= TotalQuestions holds by construction: both counters
// move in the same statement.
type UserAnalytics struct {
	BaseModel
	UserID         uint      `gorm:"uniqueIndex:idx_user_subject;not null" json:"userId"`
	Subject        string    `gorm:"size:60;uniqueIndex:idx_user_subject;not null" json:"subject"`
	TotalQuestions int       `gorm:"default:0" json:"totalQuestions"`
	CorrectAnswers int       `gorm:"default:0" json:"correctAnswers"`
	AverageScore   float64   `gorm:"default:0" json:"averageScore"`
	MasteryLevel   float64   `gorm:"default:0" json:"masteryLevel"`
	LastPracticed  time.Time `json:"lastPracticed"`
}

func (UserAnalytics) TableName() string {
	return "user_analytics"
}

// AnalyticsOverview is the aggregate view served by the analytics
// endpoint. PassProbability is derived from the subject rows, never
// stored independently of them.
type AnalyticsOverview struct {
	SubjectAnalytics []UserAnalytics `json:"subjectAnalytics"`
	PassProbability  float64         `json:"passProbability"`
	TotalQuestions   int             `json:"totalQuestions"`
	AverageScore     float64         `json:"averageScore"`
	TestSessions     []TestSession   `json:"testSessions"`
}
