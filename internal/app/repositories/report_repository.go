package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selim/campushub/internal/app/models"
)

// ReportRepository handles database operations for moderation reports
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new report
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (id, reporter_id, content_id, content_type, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.ReporterID,
		report.ContentID,
		report.ContentType,
		report.Reason,
		report.Status,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating report: %w", err)
	}

	return nil
}

// ListByStatus retrieves reports in a given status, newest first, with
// reporters populated
func (r *ReportRepository) ListByStatus(ctx context.Context, status models.ReportStatus) ([]*models.Report, error) {
	query := `
		SELECT
			rp.id, rp.reporter_id, rp.content_id, rp.content_type, rp.reason, rp.status, rp.created_at,
			u.id, u.first_name, u.last_name, u.avatar_url, u.bio, u.role, u.created_at, u.last_login_at
		FROM reports rp
		JOIN users u ON rp.reporter_id = u.id
		WHERE rp.status = $1
		ORDER BY rp.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		var report models.Report
		var reporter models.User
		err := rows.Scan(
			&report.ID,
			&report.ReporterID,
			&report.ContentID,
			&report.ContentType,
			&report.Reason,
			&report.Status,
			&report.CreatedAt,
			&reporter.ID,
			&reporter.FirstName,
			&reporter.LastName,
			&reporter.AvatarURL,
			&reporter.Bio,
			&reporter.Role,
			&reporter.CreatedAt,
			&reporter.LastLoginAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		report.Reporter = &reporter
		reports = append(reports, &report)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return reports, nil
}

// ExistsForContent reports whether the user already reported the content
func (r *ReportRepository) ExistsForContent(ctx context.Context, reporterID string, contentID uuid.UUID, contentType models.ReportContentType) (bool, error) {
	var exists int
	err := r.db.QueryRow(ctx, `
		SELECT 1 FROM reports
		WHERE reporter_id = $1 AND content_id = $2 AND content_type = $3
	`, reporterID, contentID, contentType).Scan(&exists)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error checking report: %w", err)
	}

	return true, nil
}
