package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/app/services"
	"github.com/selim/campushub/internal/middleware"
	"github.com/selim/campushub/internal/pkg/helpers"
)

// PostController handles post and like related operations
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{postService: postService}
}

// CreatePost handles creating a new post
// @Summary Create a post
// @Description Creates a post with optional media upload. Content may be empty when media is attached.
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param content formData string false "Post content (max 2000 characters)"
// @Param media formData file false "Media attachment (single image file)"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse} "Post created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: token missing or invalid"
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	media, fileErr := ctx.FormFile("media")
	if fileErr != nil && fileErr != http.ErrMissingFile {
		media = nil
	}

	post, err := c.postService.CreatePost(ctx, ctx.GetString("userID"), &req, media)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// GetFeed handles retrieving the global feed
// @Summary Get the feed
// @Description Retrieves all posts newest first with pagination
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param size query int false "Page size (default: 20, max: 100)" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse} "Feed retrieved successfully"
// @Router /posts [get]
func (c *PostController) GetFeed(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	feed, err := c.postService.GetFeed(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(feed))
}

// GetPostByID handles retrieving a single post with comments and likers
// @Summary Get post by ID
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.PostDetailResponse} "Post retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id} [get]
func (c *PostController) GetPostByID(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid post ID")
	if !ok {
		return
	}

	post, err := c.postService.GetPostByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// GetPostsByUser handles retrieving one user's recent posts
// @Summary Get a user's posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param count query int false "Maximum number of posts" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.PostResponse} "Posts retrieved successfully"
// @Router /users/{id}/posts [get]
func (c *PostController) GetPostsByUser(ctx *gin.Context) {
	count := helpers.ParseCountParam(ctx, "count", 10)

	posts, err := c.postService.GetPostsByUser(ctx, ctx.Param("id"), count)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts))
}

// DeletePost handles deleting a post
// @Summary Delete a post
// @Description Deletes a post when the caller is its author or a moderator. Cascades to comments and likes.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Post deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author or a moderator"
// @Router /posts/{id} [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid post ID")
	if !ok {
		return
	}

	deleted, err := c.postService.DeletePost(ctx, id, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "You cannot delete this post")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Post deleted"}))
}

// LikePost handles liking a post
// @Summary Like a post
// @Description Records a like. Liking an already liked post is a no-op reported in the response.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse "Like state"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{id}/like [post]
func (c *PostController) LikePost(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid post ID")
	if !ok {
		return
	}

	liked, err := c.postService.LikePost(ctx, id, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"liked": liked}))
}

// UnlikePost handles removing a like
// @Summary Unlike a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse "Like state"
// @Router /posts/{id}/like [delete]
func (c *PostController) UnlikePost(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid post ID")
	if !ok {
		return
	}

	unliked, err := c.postService.UnlikePost(ctx, id, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"unliked": unliked}))
}

// GetLikeStatus handles reading the caller's like state and the like count
// @Summary Get like status
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse "Like status and count"
// @Router /posts/{id}/like [get]
func (c *PostController) GetLikeStatus(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid post ID")
	if !ok {
		return
	}

	hasLiked, err := c.postService.HasLiked(ctx, id, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	count, err := c.postService.LikeCount(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"hasLiked": hasLiked, "likeCount": count}))
}

// parseUUIDParam reads a UUID path parameter, answering 400 itself when the
// value does not parse
func parseUUIDParam(ctx *gin.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))
		return uuid.Nil, false
	}
	return id, true
}
