package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/app/services"
	"github.com/selim/campushub/internal/middleware"
)

// FriendController handles friend request and friendship operations
type FriendController struct {
	friendService services.FriendService
}

// NewFriendController creates a new FriendController
func NewFriendController(friendService services.FriendService) *FriendController {
	return &FriendController{friendService: friendService}
}

// SendFriendRequest handles sending a friend request
// @Summary Send a friend request
// @Description Sends a Pending friend request. Any existing request between the two users, in either direction and any status, blocks a new one.
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendFriendRequestRequest true "Receiver user ID"
// @Success 200 {object} dto.APIResponse "Whether the request was created"
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Router /friends/requests [post]
func (c *FriendController) SendFriendRequest(ctx *gin.Context) {
	var req dto.SendFriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	sent, err := c.friendService.SendRequest(ctx, ctx.GetString("userID"), req.ReceiverID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"sent": sent}))
}

// AcceptFriendRequest handles accepting a pending friend request
// @Summary Accept a friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path string true "Friend request ID"
// @Success 200 {object} dto.APIResponse "Whether the request was accepted"
// @Router /friends/requests/{id}/accept [put]
func (c *FriendController) AcceptFriendRequest(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid friend request ID")
	if !ok {
		return
	}

	accepted, err := c.friendService.AcceptRequest(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"accepted": accepted}))
}

// DeclineFriendRequest handles declining a pending friend request
// @Summary Decline a friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path string true "Friend request ID"
// @Success 200 {object} dto.APIResponse "Whether the request was declined"
// @Router /friends/requests/{id}/decline [put]
func (c *FriendController) DeclineFriendRequest(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid friend request ID")
	if !ok {
		return
	}

	declined, err := c.friendService.DeclineRequest(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"declined": declined}))
}

// GetFriends handles retrieving the caller's friends
// @Summary Get friends
// @Description Retrieves the derived friend list, capped at 20 entries
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FriendListResponse} "Friends retrieved successfully"
// @Router /friends [get]
func (c *FriendController) GetFriends(ctx *gin.Context) {
	friends, err := c.friendService.GetFriends(ctx, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FriendListResponse{Friends: friends}))
}

// GetPendingRequests handles retrieving the caller's incoming pending requests
// @Summary Get pending friend requests
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FriendRequestListResponse} "Pending requests retrieved successfully"
// @Router /friends/requests [get]
func (c *FriendController) GetPendingRequests(ctx *gin.Context) {
	requests, err := c.friendService.GetPendingRequests(ctx, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FriendRequestListResponse{Requests: requests}))
}
