package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/selim/campushub/internal/app/models"
	appRepos "github.com/selim/campushub/internal/app/repositories"
	"github.com/selim/campushub/internal/pkg/dberrors"
)

// CreateDefaultData creates a few well-known demo identities if they don't
// exist. User ids mirror the subjects the identity provider issues in the
// development realm, so tokens minted there resolve to these rows.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (demo users)...")
	var finalErr error

	demoUsers := []*appModels.User{
		{
			ID:        "demo-student-1",
			FirstName: "Ada",
			LastName:  "Yilmaz",
			Role:      appModels.RoleStudent,
			CreatedAt: time.Now(),
		},
		{
			ID:        "demo-teacher-1",
			FirstName: "Kemal",
			LastName:  "Demir",
			Role:      appModels.RoleTeacher,
			CreatedAt: time.Now(),
		},
		{
			ID:        "demo-admin-1",
			FirstName: "Zeynep",
			LastName:  "Kaya",
			Role:      appModels.RoleAdmin,
			CreatedAt: time.Now(),
		},
	}

	for _, u := range demoUsers {
		existing, err := userRepo.FindByID(ctx, u.ID)
		if err != nil {
			lgr.Error().Err(err).Str("userID", u.ID).Msg("Error checking for existing demo user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if existing != nil {
			continue
		}

		if err := userRepo.Create(ctx, u); err != nil && !dberrors.IsUniqueViolation(err) {
			lgr.Error().Err(err).Str("userID", u.ID).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation complete.")
	}
	return finalErr
}
