package models

import (
	"time"

	"github.com/google/uuid"
)

// Report represents a moderation report filed against a post or a comment
type Report struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	ReporterID  string            `json:"reporterId" db:"reporter_id"`
	ContentID   uuid.UUID         `json:"contentId" db:"content_id"`
	ContentType ReportContentType `json:"contentType" db:"content_type"`
	Reason      *string           `json:"reason,omitempty" db:"reason"`
	Status      ReportStatus      `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`

	// Related entities
	Reporter *User `json:"reporter,omitempty"`
}
