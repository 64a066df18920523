package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/middleware"
	"tripmate/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// SendMessage godoc
// @Summary Send a chat message
// @Description Sends the user's message to the travel planner and returns the reply. A new conversation is created when conversationId is empty.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.SendMessageRequest true "Message"
// @Success 200 {object} response_models.ChatReply
// @Router /api/chat/message [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "content is required")
		return
	}

	reply, err := ch.chatService.SendMessage(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Message sent successfully")
}

// StreamMessage godoc
// @Summary Send a chat message and stream the reply
// @Description Server-Sent Events: one "conversation" event, "delta" events with reply fragments, then "done" with the full reply or "error".
// @Tags Chat
// @Accept json
// @Produce text/event-stream
// @Param request body request_models.SendMessageRequest true "Message"
// @Router /api/chat/stream [post]
func (ch *ChatController) StreamMessage(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "content is required")
		return
	}

	started := false
	reply, err := ch.chatService.StreamMessage(c.Request.Context(), middleware.UserID(c), req,
		func(conversationID string) error {
			started = true
			c.Header("Content-Type", "text/event-stream")
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			c.Header("X-Accel-Buffering", "no")
			c.SSEvent("conversation", gin.H{"conversationId": conversationID})
			c.Writer.Flush()
			return nil
		},
		func(delta string) error {
			c.SSEvent("delta", gin.H{"content": delta})
			c.Writer.Flush()
			return c.Request.Context().Err()
		})

	if err != nil {
		if !started {
			utils.HandleServiceError(c, err)
			return
		}
		code, message := utils.ErrorStatus(err)
		c.SSEvent("error", gin.H{"code": code, "message": message})
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", reply)
	c.Writer.Flush()
}

// ListConversations godoc
// @Summary List conversations of the caller
// @Description Guests always get an empty list
// @Tags Chat
// @Produce json
// @Success 200 {array} response_models.ConversationSummary
// @Security BearerAuth
// @Router /api/chat/conversations [get]
func (ch *ChatController) ListConversations(c *gin.Context) {
	convs, err := ch.chatService.ListConversations(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, convs, "Conversations fetched successfully")
}

// GetConversation godoc
// @Summary Get a conversation with its messages
// @Tags Chat
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} response_models.ConversationDetail
// @Failure 404 {object} utils.APIResponse
// @Router /api/chat/{id} [get]
func (ch *ChatController) GetConversation(c *gin.Context) {
	conv, err := ch.chatService.GetConversation(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, conv, "Conversation fetched successfully")
}

// DeleteConversation godoc
// @Summary Delete a conversation
// @Tags Chat
// @Param id path string true "Conversation ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /api/chat/{id} [delete]
func (ch *ChatController) DeleteConversation(c *gin.Context) {
	if err := ch.chatService.DeleteConversation(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
