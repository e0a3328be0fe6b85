package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/walterBrayan/BackTalentHub/internal/domain/resume"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
)

type postgresResumeRepo struct {
	db *pgxpool.Pool
}

func NewPostgresResumeRepo(db *pgxpool.Pool) resume.Repository {
	return &postgresResumeRepo{db: db}
}

func scanResume(row pgx.Row, r *resume.Resume) error {
	return row.Scan(
		&r.ID,
		&r.UserID,
		&r.Title,
		&r.Description,
		&r.Category,
		&r.Status,
		&r.FileURL,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
}

func (r *postgresResumeRepo) Save(ctx context.Context, res *resume.Resume) error {
	query := `
		INSERT INTO resumes (user_id, title, description, category, status, file_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		res.UserID, res.Title, res.Description, res.Category, res.Status,
		res.FileURL, res.CreatedAt, res.UpdatedAt,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

func (r *postgresResumeRepo) Update(ctx context.Context, res *resume.Resume) error {
	query := `
		UPDATE resumes SET
			title = $3, description = $4, category = $5, status = $6, file_url = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query,
		res.ID, res.UserID, res.Title, res.Description, res.Category, res.Status, res.FileURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", fmt.Sprintf("%d", res.ID))
	}
	return nil
}

func (r *postgresResumeRepo) FindByID(ctx context.Context, id int64, userID uuid.UUID) (*resume.Resume, error) {
	query := `
		SELECT id, user_id, title, description, category, status, file_url, created_at, updated_at
		FROM resumes
		WHERE id = $1 AND user_id = $2
	`
	res := &resume.Resume{}
	if err := scanResume(r.db.QueryRow(ctx, query, id, userID), res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("resume", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to query resume: %w", err)
	}
	return res, nil
}

func (r *postgresResumeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*resume.Resume, error) {
	query, args, err := psql.Select("id", "user_id", "title", "description", "category", "status", "file_url", "created_at", "updated_at").
		From("resumes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build resume list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query resumes: %w", err)
	}
	defer rows.Close()

	resumes := make([]*resume.Resume, 0)
	for rows.Next() {
		res := &resume.Resume{}
		if err := scanResume(rows, res); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		resumes = append(resumes, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resume rows: %w", err)
	}
	return resumes, nil
}
