package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/app/services"
	"github.com/selim/campushub/internal/middleware"
)

// CommentController handles comment related operations
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// CreateComment handles commenting on a post
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body dto.CreateCommentRequest true "Comment content (1-200 characters)"
// @Success 201 {object} dto.APIResponse{data=dto.CommentResponse} "Comment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid content"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id}/comments [post]
func (c *CommentController) CreateComment(ctx *gin.Context) {
	postID, ok := parseUUIDParam(ctx, "id", "Invalid post ID")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	comment, err := c.commentService.CreateComment(ctx, postID, ctx.GetString("userID"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// GetCommentsByPost handles retrieving a page of a post's comments
// @Summary Get a post's comments
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param skip query int false "Comments to skip" default(0)
// @Param take query int false "Comments to return (max 100)" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.CommentListResponse} "Comments retrieved successfully"
// @Router /posts/{id}/comments [get]
func (c *CommentController) GetCommentsByPost(ctx *gin.Context) {
	postID, ok := parseUUIDParam(ctx, "id", "Invalid post ID")
	if !ok {
		return
	}

	skip, err := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	take, err := strconv.Atoi(ctx.DefaultQuery("take", "20"))
	if err != nil || take <= 0 || take > 100 {
		take = 20
	}

	comments, err := c.commentService.GetCommentsByPost(ctx, postID, skip, take)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CommentListResponse{Comments: comments}))
}

// DeleteComment handles deleting a comment
// @Summary Delete a comment
// @Description Deletes a comment when the caller is its author or a moderator
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Comment deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author or a moderator"
// @Router /comments/{id} [delete]
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid comment ID")
	if !ok {
		return
	}

	deleted, err := c.commentService.DeleteComment(ctx, id, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "You cannot delete this comment")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Comment deleted"}))
}
