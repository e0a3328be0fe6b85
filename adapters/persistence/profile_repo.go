package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
)

type postgresProfileRepo struct {
	db *pgxpool.Pool
}

func NewPostgresProfileRepo(db *pgxpool.Pool) profile.Repository {
	return &postgresProfileRepo{db: db}
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT id, user_id, headline, linkedin_url, github_url, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.Headline,
		&p.LinkedinURL,
		&p.GithubURL,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", userID.String())
		}
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, headline, linkedin_url, github_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			headline = EXCLUDED.headline,
			linkedin_url = EXCLUDED.linkedin_url,
			github_url = EXCLUDED.github_url,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.Headline, p.LinkedinURL, p.GithubURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetAggregate loads the profile and all four child collections. Reads run
// against the pool through the same stores the unit of work uses.
func (r *postgresProfileRepo) GetAggregate(ctx context.Context, userID uuid.UUID) (*profile.Aggregate, error) {
	p, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	agg := &profile.Aggregate{Profile: *p}

	workStore := &collectionStore[profile.WorkExperience]{db: r.db, meta: workExperienceMeta}
	if agg.WorkExperiences, err = workStore.ListByProfile(ctx, p.ID); err != nil {
		return nil, err
	}

	eduStore := &collectionStore[profile.Education]{db: r.db, meta: educationMeta}
	if agg.Educations, err = eduStore.ListByProfile(ctx, p.ID); err != nil {
		return nil, err
	}

	langStore := &collectionStore[profile.Language]{db: r.db, meta: languageMeta}
	if agg.Languages, err = langStore.ListByProfile(ctx, p.ID); err != nil {
		return nil, err
	}

	certStore := &collectionStore[profile.Certificate]{db: r.db, meta: certificateMeta}
	if agg.Certificates, err = certStore.ListByProfile(ctx, p.ID); err != nil {
		return nil, err
	}

	return agg, nil
}
