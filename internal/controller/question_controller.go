package controller

import (
	"barprep_backend/internal/service"
	"barprep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	SessionService *service.SessionService
}

func NewQuestionController(sessionService *service.SessionService) *QuestionController {
	return &QuestionController{SessionService: sessionService}
}

// Generate godoc
// @Summary Generate one exam question
// @Description When bound to a session, the provider and question kind default from it
// @Tags questions
// @Accept json
// @Produce json
// @Param body body service.GenerateQuestionRequest true "generation parameters"
// @Success 200 {object} util.Response{data=object}
// @Failure 500 {object} util.Response
// @Router /api/generate-question [post]
func (c *QuestionController) Generate(ctx *gin.Context) {
	var req service.GenerateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.CategoryValidation, err)
		return
	}

	question, generatedBy, err := c.SessionService.GenerateQuestion(ctx.Request.Context(), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"question":    question,
		"generatedBy": generatedBy,
	})
}

// Submit godoc
// @Summary Submit and grade one answer
// @Description Grades through the session's backend, records the response, and updates analytics
// @Tags questions
// @Accept json
// @Produce json
// @Param body body service.SubmitAnswerRequest true "the answer"
// @Success 201 {object} util.Response{data=service.SubmitResult}
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/question-responses [post]
func (c *QuestionController) Submit(ctx *gin.Context) {
	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.CategoryValidation, err)
		return
	}

	result, err := c.SessionService.SubmitAnswer(ctx.Request.Context(), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// SubmitBatch godoc
// @Summary Submit deferred answers as a batch
// @Description Grades accumulated answers in question order; stops at the first failure
// @Tags questions
// @Accept json
// @Produce json
// @Param body body service.BatchSubmitRequest true "the answers"
// @Success 201 {object} util.Response{data=[]service.SubmitResult}
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/question-responses/batch [post]
func (c *QuestionController) SubmitBatch(ctx *gin.Context) {
	var req service.BatchSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.CategoryValidation, err)
		return
	}

	results, err := c.SessionService.SubmitBatch(ctx.Request.Context(), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, results)
}
