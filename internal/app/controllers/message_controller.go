package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/app/services"
	"github.com/selim/campushub/internal/middleware"
)

// MessageController handles direct messaging. The friendship gate lives
// here: the messaging service assumes the two parties are allowed to talk,
// so this controller checks it before every send.
type MessageController struct {
	messageService services.MessageService
	friendService  services.FriendService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService, friendService services.FriendService) *MessageController {
	return &MessageController{
		messageService: messageService,
		friendService:  friendService,
	}
}

// SendMessage handles sending a direct message to a friend
// @Summary Send a direct message
// @Description Sends a message with optional media upload. Only confirmed friends may message each other.
// @Tags messages
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Receiver user ID"
// @Param content formData string false "Message content (max 500 characters)"
// @Param media formData file false "Media attachment (single image file)"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Message sent"
// @Failure 403 {object} dto.ErrorResponse "Receiver is not a friend"
// @Router /messages/{userId} [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	senderID := ctx.GetString("userID")
	receiverID := ctx.Param("userId")

	areFriends, err := c.friendService.AreFriends(ctx, senderID, receiverID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !areFriends {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "you can only message friends")))
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	media, fileErr := ctx.FormFile("media")
	if fileErr != nil && fileErr != http.ErrMissingFile {
		media = nil
	}

	message, err := c.messageService.SendMessage(ctx, senderID, receiverID, &req, media)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// GetConversation handles retrieving the conversation with another user
// @Summary Get a conversation
// @Description Retrieves the messages exchanged with another user, newest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Other user ID"
// @Param skip query int false "Messages to skip" default(0)
// @Param take query int false "Messages to return (max 100)" default(50)
// @Success 200 {object} dto.APIResponse{data=dto.ConversationResponse} "Conversation retrieved successfully"
// @Router /messages/{userId} [get]
func (c *MessageController) GetConversation(ctx *gin.Context) {
	skip, err := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	take, err := strconv.Atoi(ctx.DefaultQuery("take", "50"))
	if err != nil || take <= 0 || take > 100 {
		take = 50
	}

	messages, err := c.messageService.GetConversation(ctx, ctx.GetString("userID"), ctx.Param("userId"), skip, take)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ConversationResponse{Messages: messages}))
}

// GetConversationList handles retrieving the caller's conversation overview
// @Summary Get the conversation list
// @Description Retrieves one preview per conversation partner: the latest message and the unread count, ordered by last activity
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ConversationListResponse} "Conversations retrieved successfully"
// @Router /messages/conversations [get]
func (c *MessageController) GetConversationList(ctx *gin.Context) {
	previews, err := c.messageService.GetConversationList(ctx, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ConversationListResponse{Conversations: previews}))
}

// GetUnreadMessages handles retrieving the caller's unread messages
// @Summary Get unread messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ConversationResponse} "Unread messages retrieved successfully"
// @Router /messages/unread [get]
func (c *MessageController) GetUnreadMessages(ctx *gin.Context) {
	messages, err := c.messageService.GetUnreadMessages(ctx, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ConversationResponse{Messages: messages}))
}

// MarkMessageRead handles flipping an incoming message to read
// @Summary Mark a message as read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} dto.APIResponse "Whether the message was marked"
// @Router /messages/read/{id} [put]
func (c *MessageController) MarkMessageRead(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid message ID")
	if !ok {
		return
	}

	marked, err := c.messageService.MarkAsRead(ctx, id, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"marked": marked}))
}
