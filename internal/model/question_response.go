package model

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionShortAnswer    QuestionType = "short-answer"
	QuestionEssay          QuestionType = "essay"
)

// QuestionResponse is one answered question within a session. Written
// once the answer has been graded; immutable thereafter. Question
// numbers are 1-based and unique within a session.
type QuestionResponse struct {
	UUIDBase
	SessionID        string       `gorm:"type:varchar(36);index;uniqueIndex:idx_session_question;not null" json:"sessionId"`
	QuestionNumber   int          `gorm:"uniqueIndex:idx_session_question;not null" json:"questionNumber"`
	QuestionType     QuestionType `gorm:"size:20;not null" json:"questionType"`
	Subject          string       `gorm:"size:60;index" json:"subject"`
	QuestionText     string       `gorm:"type:text" json:"questionText"`
	Options          string       `gorm:"type:text" json:"options,omitempty"` // JSON array, multiple-choice only
	UserAnswer       string       `gorm:"type:text" json:"userAnswer"`
	CorrectAnswer    string       `gorm:"type:text" json:"correctAnswer"`
	IsCorrect        bool         `json:"isCorrect"`
	Score            float64      `gorm:"default:0" json:"score"` // grading score, 0-100
	Explanation      string       `gorm:"type:text" json:"explanation"`
	GradingDetail    string       `gorm:"type:text" json:"gradingDetail,omitempty"` // JSON verdict from the grader
	TimeSpentSeconds int          `gorm:"default:0" json:"timeSpentSeconds"`
	AIProvider       string       `gorm:"size:30" json:"aiProvider"`
}

func (QuestionResponse) TableName() string {
	return "question_responses"
}
