package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/walterBrayan/BackTalentHub/internal/domain/application"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
)

type postgresApplicationRepo struct {
	db *pgxpool.Pool
}

func NewPostgresApplicationRepo(db *pgxpool.Pool) application.Repository {
	return &postgresApplicationRepo{db: db}
}

func scanApplication(row pgx.Row, a *application.Application) error {
	return row.Scan(
		&a.ID,
		&a.UserID,
		&a.Position,
		&a.Company,
		&a.URL,
		&a.Description,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

func (r *postgresApplicationRepo) Save(ctx context.Context, a *application.Application) error {
	query := `
		INSERT INTO job_applications (user_id, position, company, url, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		a.UserID, a.Position, a.Company, a.URL, a.Description, a.Status, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

func (r *postgresApplicationRepo) Update(ctx context.Context, a *application.Application) error {
	query := `
		UPDATE job_applications SET
			position = $3, company = $4, url = $5, description = $6, status = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query,
		a.ID, a.UserID, a.Position, a.Company, a.URL, a.Description, a.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("application", fmt.Sprintf("%d", a.ID))
	}
	return nil
}

func (r *postgresApplicationRepo) FindByID(ctx context.Context, id int64, userID uuid.UUID) (*application.Application, error) {
	query := `
		SELECT id, user_id, position, company, url, description, status, created_at, updated_at
		FROM job_applications
		WHERE id = $1 AND user_id = $2
	`
	a := &application.Application{}
	if err := scanApplication(r.db.QueryRow(ctx, query, id, userID), a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("application", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to query application: %w", err)
	}
	return a, nil
}

func (r *postgresApplicationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*application.Application, error) {
	query, args, err := psql.Select("id", "user_id", "position", "company", "url", "description", "status", "created_at", "updated_at").
		From("job_applications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build application list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	apps := make([]*application.Application, 0)
	for rows.Next() {
		a := &application.Application{}
		if err := scanApplication(rows, a); err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, nil
}
