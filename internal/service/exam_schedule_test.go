package service

import (
	"testing"

	"barprep_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTotalQuestions(t *testing.T) {
	assert.Equal(t, 20, DefaultTotalQuestions(model.ExamDiagnostic))
	assert.Equal(t, 3, DefaultTotalQuestions(model.ExamDiagnosticDev))
	assert.Equal(t, 228, DefaultTotalQuestions(model.ExamFull))
	assert.Equal(t, 200, DefaultTotalQuestions(model.ExamDay1))
	assert.Equal(t, 22, DefaultTotalQuestions(model.ExamDay2))
	assert.Equal(t, 6, DefaultTotalQuestions(model.ExamDay3))
	assert.Equal(t, 0, DefaultTotalQuestions(model.ExamType("nope")))
}

func TestScheduledQuestionTypeBoundaries(t *testing.T) {
	cases := []struct {
		examType model.ExamType
		n        int
		want     model.QuestionType
	}{
		{model.ExamDiagnostic, 1, model.QuestionMultipleChoice},
		{model.ExamDiagnostic, 15, model.QuestionMultipleChoice},
		{model.ExamDiagnostic, 16, model.QuestionShortAnswer},
		{model.ExamDiagnostic, 18, model.QuestionShortAnswer},
		{model.ExamDiagnostic, 19, model.QuestionEssay},
		{model.ExamDiagnostic, 20, model.QuestionEssay},
		{model.ExamDiagnosticDev, 1, model.QuestionMultipleChoice},
		{model.ExamDiagnosticDev, 2, model.QuestionShortAnswer},
		{model.ExamDiagnosticDev, 3, model.QuestionEssay},
		{model.ExamFull, 200, model.QuestionMultipleChoice},
		{model.ExamFull, 201, model.QuestionShortAnswer},
		{model.ExamFull, 222, model.QuestionShortAnswer},
		{model.ExamFull, 223, model.QuestionEssay},
		{model.ExamFull, 228, model.QuestionEssay},
		{model.ExamDay1, 200, model.QuestionMultipleChoice},
		{model.ExamDay2, 22, model.QuestionShortAnswer},
		{model.ExamDay3, 6, model.QuestionEssay},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ScheduledQuestionType(tc.examType, tc.n),
			"%s question %d", tc.examType, tc.n)
	}
}

func TestScheduledQuestionTypeFallsBackToMultipleChoice(t *testing.T) {
	assert.Equal(t, model.QuestionMultipleChoice, ScheduledQuestionType(model.ExamDiagnostic, 21))
	assert.Equal(t, model.QuestionMultipleChoice, ScheduledQuestionType(model.ExamType("nope"), 1))
}

func TestValidExamType(t *testing.T) {
	assert.True(t, ValidExamType(model.ExamDiagnostic))
	assert.True(t, ValidExamType(model.ExamFull))
	assert.False(t, ValidExamType(model.ExamType("midterm")))
}
