package controller

import (
	"barprep_backend/internal/service"
	"barprep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// Create godoc
// @Summary Create a test session
// @Description Opens a new active session; total questions default per exam type
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body service.CreateSessionRequest true "session parameters"
// @Success 201 {object} util.Response{data=model.TestSession}
// @Failure 500 {object} util.Response
// @Router /api/test-sessions [post]
func (c *SessionController) Create(ctx *gin.Context) {
	var req service.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.CategoryValidation, err)
		return
	}

	session, err := c.SessionService.CreateSession(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// Get godoc
// @Summary Fetch a test session
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response{data=model.TestSession}
// @Failure 404 {object} util.Response
// @Router /api/test-sessions/{id} [get]
func (c *SessionController) Get(ctx *gin.Context) {
	session, err := c.SessionService.GetSession(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// Update godoc
// @Summary Partially update a test session
// @Description Writes only the whitelisted fields
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body service.UpdateSessionRequest true "fields to update"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/test-sessions/{id} [patch]
func (c *SessionController) Update(ctx *gin.Context) {
	var req service.UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.CategoryValidation, err)
		return
	}

	if _, err := c.SessionService.UpdateSession(ctx.Param("id"), req); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

// ListResponses godoc
// @Summary List a session's answered questions
// @Description Ordered by question number
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response{data=[]model.QuestionResponse}
// @Failure 404 {object} util.Response
// @Router /api/test-sessions/{id}/responses [get]
func (c *SessionController) ListResponses(ctx *gin.Context) {
	responses, err := c.SessionService.ListResponses(ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, responses)
}
