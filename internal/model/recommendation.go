package model

type RecommendationType string

const (
	RecommendationWeakArea RecommendationType = "weak-area"
	RecommendationReview   RecommendationType = "review"
	RecommendationPractice RecommendationType = "practice"
)

// StudyRecommendation is a generated study suggestion. Mutated only to
// mark it completed.
type StudyRecommendation struct {
	UUIDBase
	UserID    uint               `gorm:"index;not null" json:"userId"`
	Type      RecommendationType `gorm:"size:20;not null" json:"type"`
	Subject   string             `gorm:"size:60" json:"subject"`
	Priority  int                `gorm:"default:1" json:"priority"` // 1-5, 5 most urgent
	Content   string             `gorm:"type:text" json:"content"`
	Completed bool               `gorm:"default:false" json:"completed"`
}

func (StudyRecommendation) TableName() string {
	return "study_recommendations"
}
