package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/app/services"
	"github.com/selim/campushub/internal/middleware"
)

// reportReasonRequest carries the optional free-text reason for a report
type reportReasonRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

// ReportController handles moderation report operations
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// ReportPost handles reporting a post
// @Summary Report a post
// @Description Files a Pending moderation report. Reporting your own post is rejected.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body dto.CreateReportRequest false "Optional reason (max 500 characters)"
// @Success 201 {object} dto.APIResponse{data=dto.ReportResponse} "Report filed"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 409 {object} dto.ErrorResponse "Self-report or duplicate report"
// @Router /reports/posts/{id} [post]
func (c *ReportController) ReportPost(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid post ID")
	if !ok {
		return
	}

	var req reportReasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	report, err := c.reportService.ReportPost(ctx, ctx.GetString("userID"), id, req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(report))
}

// ReportComment handles reporting a comment
// @Summary Report a comment
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Param request body dto.CreateReportRequest false "Optional reason (max 500 characters)"
// @Success 201 {object} dto.APIResponse{data=dto.ReportResponse} "Report filed"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Failure 409 {object} dto.ErrorResponse "Self-report or duplicate report"
// @Router /reports/comments/{id} [post]
func (c *ReportController) ReportComment(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id", "Invalid comment ID")
	if !ok {
		return
	}

	var req reportReasonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	report, err := c.reportService.ReportComment(ctx, ctx.GetString("userID"), id, req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(report))
}

// GetPendingReports handles retrieving the open reports for moderators
// @Summary Get pending reports
// @Description Retrieves the Pending reports. Restricted to Admin and Teacher roles.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ReportListResponse} "Reports retrieved successfully"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a moderator"
// @Router /reports [get]
func (c *ReportController) GetPendingReports(ctx *gin.Context) {
	reports, err := c.reportService.GetPendingReports(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ReportListResponse{Reports: reports}))
}
