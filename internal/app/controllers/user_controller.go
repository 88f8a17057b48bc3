package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/app/services"
	"github.com/selim/campushub/internal/middleware"
)

// UserController handles profile operations for externally issued identities
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUserProfile handles retrieving a user's profile with their recent posts
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserProfileDetailResponse} "Profile retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUserProfile(ctx *gin.Context) {
	profile, err := c.userService.GetUserProfile(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Users who never uploaded an avatar get a generated initials one
	if profile.AvatarURL == nil {
		generated := c.userService.GenerateAvatar(profile.FirstName, profile.LastName)
		profile.AvatarURL = &generated
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile handles updating the caller's bio and avatar
// @Summary Update my profile
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param bio formData string false "Bio (max 150 characters)"
// @Param avatar formData file false "Avatar image"
// @Success 200 {object} dto.APIResponse{data=dto.UserProfileResponse} "Profile updated successfully"
// @Router /users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	avatar, fileErr := ctx.FormFile("avatar")
	if fileErr != nil && fileErr != http.ErrMissingFile {
		avatar = nil
	}

	profile, err := c.userService.UpdateProfile(ctx, ctx.GetString("userID"), &req, avatar)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// TouchLastLogin handles stamping the caller's last login time. The web
// client calls this once per session after authenticating with the identity
// provider.
// @Summary Record login
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Login recorded"
// @Router /users/last-login [put]
func (c *UserController) TouchLastLogin(ctx *gin.Context) {
	if err := c.userService.UpdateLastLogin(ctx, ctx.GetString("userID")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Login recorded"}))
}
