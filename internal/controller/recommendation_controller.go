package controller

import (
	"barprep_backend/internal/service"
	"barprep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// List godoc
// @Summary Open study recommendations for a user
// @Description Ordered by priority descending, then recency
// @Tags recommendations
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=[]model.StudyRecommendation}
// @Failure 500 {object} util.Response
// @Router /api/users/{id}/recommendations [get]
func (c *RecommendationController) List(ctx *gin.Context) {
	userID := util.ParseUintOrZero(ctx.Param("id"))
	if userID == 0 {
		util.Fail(ctx, util.CategoryValidation, errInvalidUserID)
		return
	}

	recs, err := c.RecommendationService.ListOpen(userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, recs)
}

// Complete godoc
// @Summary Mark a recommendation completed
// @Tags recommendations
// @Produce json
// @Param id path string true "recommendation id"
// @Success 200 {object} util.Response{data=model.StudyRecommendation}
// @Failure 404 {object} util.Response
// @Router /api/recommendations/{id}/complete [patch]
func (c *RecommendationController) Complete(ctx *gin.Context) {
	rec, err := c.RecommendationService.Complete(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, rec)
}
