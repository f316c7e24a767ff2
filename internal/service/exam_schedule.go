package service

import "barprep_backend/internal/model"

// kindRange maps an inclusive question-number span to a question kind.
type kindRange struct {
	From int
	To   int
	Kind model.QuestionType
}

// examSchedules fixes the kind of every question position per exam
// type. Positions outside every range fall back to multiple choice.
var examSchedules = map[model.ExamType][]kindRange{
	model.ExamDiagnostic: {
		{1, 15, model.QuestionMultipleChoice},
		{16, 18, model.QuestionShortAnswer},
		{19, 20, model.QuestionEssay},
	},
	model.ExamDiagnosticDev: {
		{1, 1, model.QuestionMultipleChoice},
		{2, 2, model.QuestionShortAnswer},
		{3, 3, model.QuestionEssay},
	},
	model.ExamFull: {
		{1, 200, model.QuestionMultipleChoice},
		{201, 222, model.QuestionShortAnswer},
		{223, 228, model.QuestionEssay},
	},
	model.ExamDay1: {
		{1, 200, model.QuestionMultipleChoice},
	},
	model.ExamDay2: {
		{1, 22, model.QuestionShortAnswer},
	},
	model.ExamDay3: {
		{1, 6, model.QuestionEssay},
	},
}

var defaultTotals = map[model.ExamType]int{
	model.ExamDiagnostic:    20,
	model.ExamDiagnosticDev: 3,
	model.ExamFull:          228,
	model.ExamDay1:          200,
	model.ExamDay2:          22,
	model.ExamDay3:          6,
}

// ValidExamType reports whether t names a known exam type.
func ValidExamType(t model.ExamType) bool {
	_, ok := defaultTotals[t]
	return ok
}

// DefaultTotalQuestions returns the question count a session of the
// given type gets when the caller does not override it.
func DefaultTotalQuestions(t model.ExamType) int {
	if n, ok := defaultTotals[t]; ok {
		return n
	}
	return 0
}

// ScheduledQuestionType returns the kind for question n of the given
// exam type.
func ScheduledQuestionType(t model.ExamType, n int) model.QuestionType {
	for _, r := range examSchedules[t] {
		if n >= r.From && n <= r.To {
			return r.Kind
		}
	}
	return model.QuestionMultipleChoice
}
