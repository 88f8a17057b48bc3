package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

// ReportService defines the interface for moderation report operations
type ReportService interface {
	ReportPost(ctx context.Context, reporterID string, postID uuid.UUID, reason *string) (*dto.ReportResponse, error)
	ReportComment(ctx context.Context, reporterID string, commentID uuid.UUID, reason *string) (*dto.ReportResponse, error)
	GetPendingReports(ctx context.Context) ([]dto.ReportResponse, error)
}

// reportServiceImpl implements ReportService
type reportServiceImpl struct {
	reportStore  ReportStore
	postStore    PostStore
	commentStore CommentStore
	logger       zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	reportStore ReportStore,
	postStore PostStore,
	commentStore CommentStore,
	logger zerolog.Logger,
) ReportService {
	return &reportServiceImpl{
		reportStore:  reportStore,
		postStore:    postStore,
		commentStore: commentStore,
		logger:       logger,
	}
}

// ReportPost files a Pending report against a post. Reporting your own post
// is rejected, as is reporting the same post twice.
func (s *reportServiceImpl) ReportPost(ctx context.Context, reporterID string, postID uuid.UUID, reason *string) (*dto.ReportResponse, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NewResourceNotFoundError("post not found")
	}
	if post.AuthorID == reporterID {
		return nil, apperrors.NewSelfActionError("you cannot report your own post")
	}

	return s.createReport(ctx, reporterID, postID, models.ReportContentPost, reason)
}

// ReportComment files a Pending report against a comment with the same
// self-report and duplicate checks as ReportPost
func (s *reportServiceImpl) ReportComment(ctx context.Context, reporterID string, commentID uuid.UUID, reason *string) (*dto.ReportResponse, error) {
	comment, err := s.commentStore.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperrors.NewResourceNotFoundError("comment not found")
	}
	if comment.AuthorID == reporterID {
		return nil, apperrors.NewSelfActionError("you cannot report your own comment")
	}

	return s.createReport(ctx, reporterID, commentID, models.ReportContentComment, reason)
}

// GetPendingReports retrieves the open reports for moderator review
func (s *reportServiceImpl) GetPendingReports(ctx context.Context) ([]dto.ReportResponse, error) {
	reports, err := s.reportStore.ListByStatus(ctx, models.ReportStatusPending)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list pending reports")
		return nil, err
	}

	responses := make([]dto.ReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, dto.ToReportResponse(report))
	}

	return responses, nil
}

func (s *reportServiceImpl) createReport(ctx context.Context, reporterID string, contentID uuid.UUID, contentType models.ReportContentType, reason *string) (*dto.ReportResponse, error) {
	exists, err := s.reportStore.ExistsForContent(ctx, reporterID, contentID, contentType)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("you already reported this content")
	}

	report := &models.Report{
		ID:          uuid.New(),
		ReporterID:  reporterID,
		ContentID:   contentID,
		ContentType: contentType,
		Reason:      reason,
		Status:      models.ReportStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.reportStore.Create(ctx, report); err != nil {
		s.logger.Error().Err(err).
			Str("reporterID", reporterID).
			Str("contentID", contentID.String()).
			Msg("Failed to create report")
		return nil, err
	}

	response := dto.ToReportResponse(report)
	return &response, nil
}
