package controller

import (
	"barprep_backend/internal/service"
	"barprep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// GetUserAnalytics godoc
// @Summary Aggregate analytics for a user
// @Description Per-subject rollups, pass probability, overall counters, and the most recent sessions
// @Tags analytics
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=model.AnalyticsOverview}
// @Failure 500 {object} util.Response
// @Router /api/users/{id}/analytics [get]
func (c *AnalyticsController) GetUserAnalytics(ctx *gin.Context) {
	userID := util.ParseUintOrZero(ctx.Param("id"))
	if userID == 0 {
		util.Fail(ctx, util.CategoryValidation, errInvalidUserID)
		return
	}

	overview, err := c.AnalyticsService.GetOverview(ctx.Request.Context(), userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}
