package controller

import (
	"barprep_backend/internal/service"
	"barprep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DiagnosticController struct {
	SessionService *service.SessionService
}

func NewDiagnosticController(sessionService *service.SessionService) *DiagnosticController {
	return &DiagnosticController{SessionService: sessionService}
}

// Create godoc
// @Summary Bootstrap a diagnostic test
// @Description Opens a diagnostic session and generates its opening question set per type (standard, dev, single-mc)
// @Tags diagnostics
// @Accept json
// @Produce json
// @Param body body service.DiagnosticRequest true "diagnostic parameters"
// @Success 201 {object} util.Response{data=service.DiagnosticResult}
// @Failure 500 {object} util.Response
// @Router /api/diagnostic-tests [post]
func (c *DiagnosticController) Create(ctx *gin.Context) {
	var req service.DiagnosticRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.CategoryValidation, err)
		return
	}

	result, err := c.SessionService.StartDiagnostic(ctx.Request.Context(), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, result)
}
