package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/app/services"
	"github.com/selim/campushub/internal/middleware"
)

// GroupController handles group and membership operations
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// CreateGroup handles creating a new group
// @Summary Create a group
// @Description Creates a group and makes the caller its Owner
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Group name, unique code and optional description"
// @Success 201 {object} dto.APIResponse{data=dto.GroupResponse} "Group created successfully"
// @Failure 409 {object} dto.ErrorResponse "Group code already taken"
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	group, err := c.groupService.CreateGroup(ctx, ctx.GetString("userID"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(group))
}

// JoinGroup handles joining a group
// @Summary Join a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} dto.APIResponse "Whether the membership was created"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/members [post]
func (c *GroupController) JoinGroup(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid group ID")
	if !ok {
		return
	}

	joined, err := c.groupService.JoinGroup(ctx, id, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"joined": joined}))
}

// LeaveGroup handles leaving a group
// @Summary Leave a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} dto.APIResponse "Whether the membership was removed"
// @Router /groups/{id}/members [delete]
func (c *GroupController) LeaveGroup(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid group ID")
	if !ok {
		return
	}

	left, err := c.groupService.LeaveGroup(ctx, id, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"left": left}))
}

// GetGroupByCode handles looking up a group by its join code
// @Summary Get group by code
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param code path string true "Group code"
// @Success 200 {object} dto.APIResponse{data=dto.GroupDetailResponse} "Group retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/code/{code} [get]
func (c *GroupController) GetGroupByCode(ctx *gin.Context) {
	group, err := c.groupService.GetGroupByCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(group))
}

// GetUserGroups handles retrieving the caller's groups
// @Summary Get my groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.GroupListResponse} "Groups retrieved successfully"
// @Router /groups [get]
func (c *GroupController) GetUserGroups(ctx *gin.Context) {
	groups, err := c.groupService.GetUserGroups(ctx, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.GroupListResponse{Groups: groups}))
}

// GetGroupMembers handles retrieving a group's members
// @Summary Get group members
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.GroupMemberResponse} "Members retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/members [get]
func (c *GroupController) GetGroupMembers(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid group ID")
	if !ok {
		return
	}

	members, err := c.groupService.GetGroupMembers(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members))
}
