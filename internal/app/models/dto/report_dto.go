package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/selim/campushub/internal/app/models"
)

// --- Request DTOs ---

// CreateReportRequest represents data for reporting a post or a comment
type CreateReportRequest struct {
	ContentID   uuid.UUID `json:"contentId" binding:"required"`
	ContentType string    `json:"contentType" binding:"required,oneof=Post Comment"`
	Reason      *string   `json:"reason" binding:"omitempty,max=500"`
}

// --- Response DTOs ---

// ReportResponse represents a moderation report
type ReportResponse struct {
	ID          uuid.UUID          `json:"id"`
	ContentID   uuid.UUID          `json:"contentId"`
	ContentType string             `json:"contentType"`
	Reason      *string            `json:"reason,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	Reporter    *UserBasicResponse `json:"reporter,omitempty"`
}

// ReportListResponse represents the open reports for moderator review
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// ToReportResponse transforms a models.Report to ReportResponse
func ToReportResponse(report *models.Report) ReportResponse {
	return ReportResponse{
		ID:          report.ID,
		ContentID:   report.ContentID,
		ContentType: string(report.ContentType),
		Reason:      report.Reason,
		Status:      string(report.Status),
		CreatedAt:   report.CreatedAt,
		Reporter:    ToUserBasicResponse(report.Reporter),
	}
}
