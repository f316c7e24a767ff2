package controller

import (
	"barprep_backend/internal/service"
	"barprep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// Chat godoc
// @Summary Run one tutoring turn
// @Tags chat
// @Accept json
// @Produce json
// @Param body body service.ChatRequest true "the message"
// @Success 201 {object} util.Response{data=object}
// @Failure 500 {object} util.Response
// @Router /api/chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var req service.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.CategoryValidation, err)
		return
	}

	msg, err := c.ChatService.Chat(ctx.Request.Context(), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{
		"message":     msg,
		"respondedBy": msg.AIProvider,
	})
}

// History godoc
// @Summary Recent tutoring turns for a user
// @Description Reverse-chronological, default limit 50
// @Tags chat
// @Produce json
// @Param id path int true "user id"
// @Param limit query int false "max turns to return"
// @Success 200 {object} util.Response{data=[]model.ChatMessage}
// @Failure 500 {object} util.Response
// @Router /api/users/{id}/chat-history [get]
func (c *ChatController) History(ctx *gin.Context) {
	userID := util.ParseUintOrZero(ctx.Param("id"))
	if userID == 0 {
		util.Fail(ctx, util.CategoryValidation, errInvalidUserID)
		return
	}

	limit := int(util.ParseUintOrZero(ctx.DefaultQuery("limit", "0")))
	history, err := c.ChatService.History(userID, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, history)
}
