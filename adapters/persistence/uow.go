package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
	"github.com/walterBrayan/BackTalentHub/internal/domain/skill"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
)

// entityMeta describes how one child collection maps onto its table. All
// four collections share the store implementation below; only the metadata
// differs.
type entityMeta[R profile.Record] struct {
	table   string
	columns []string
	scan    func(row pgx.Row, r *R) error
	values  func(r *R) map[string]any
	setID   func(r *R, id int64)
}

var workExperienceMeta = entityMeta[profile.WorkExperience]{
	table:   "work_experiences",
	columns: []string{"id", "profile_id", "company", "position", "start_date", "end_date", "description", "current_job"},
	scan: func(row pgx.Row, w *profile.WorkExperience) error {
		return row.Scan(&w.ID, &w.ProfileID, &w.Company, &w.Position, &w.StartDate, &w.EndDate, &w.Description, &w.CurrentJob)
	},
	values: func(w *profile.WorkExperience) map[string]any {
		return map[string]any{
			"profile_id":  w.ProfileID,
			"company":     w.Company,
			"position":    w.Position,
			"start_date":  w.StartDate,
			"end_date":    w.EndDate,
			"description": w.Description,
			"current_job": w.CurrentJob,
		}
	},
	setID: func(w *profile.WorkExperience, id int64) { w.ID = id },
}

var educationMeta = entityMeta[profile.Education]{
	table:   "educations",
	columns: []string{"id", "profile_id", "institution", "degree", "start_date", "end_date", "description"},
	scan: func(row pgx.Row, e *profile.Education) error {
		return row.Scan(&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.StartDate, &e.EndDate, &e.Description)
	},
	values: func(e *profile.Education) map[string]any {
		return map[string]any{
			"profile_id":  e.ProfileID,
			"institution": e.Institution,
			"degree":      e.Degree,
			"start_date":  e.StartDate,
			"end_date":    e.EndDate,
			"description": e.Description,
		}
	},
	setID: func(e *profile.Education, id int64) { e.ID = id },
}

var languageMeta = entityMeta[profile.Language]{
	table:   "languages",
	columns: []string{"id", "profile_id", "language", "level"},
	scan: func(row pgx.Row, l *profile.Language) error {
		return row.Scan(&l.ID, &l.ProfileID, &l.Name, &l.Level)
	},
	values: func(l *profile.Language) map[string]any {
		return map[string]any{
			"profile_id": l.ProfileID,
			"language":   l.Name,
			"level":      l.Level,
		}
	},
	setID: func(l *profile.Language, id int64) { l.ID = id },
}

var certificateMeta = entityMeta[profile.Certificate]{
	table:   "certificates",
	columns: []string{"id", "profile_id", "name", "institution", "date", "url"},
	scan: func(row pgx.Row, c *profile.Certificate) error {
		return row.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Institution, &c.Date, &c.URL)
	},
	values: func(c *profile.Certificate) map[string]any {
		return map[string]any{
			"profile_id":  c.ProfileID,
			"name":        c.Name,
			"institution": c.Institution,
			"date":        c.Date,
			"url":         c.URL,
		}
	},
	setID: func(c *profile.Certificate, id int64) { c.ID = id },
}

type collectionStore[R profile.Record] struct {
	db   querier
	meta entityMeta[R]
}

func (s *collectionStore[R]) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]R, error) {
	query, args, err := psql.Select(s.meta.columns...).
		From(s.meta.table).
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s list query: %w", s.meta.table, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.meta.table, err)
	}
	defer rows.Close()

	records := make([]R, 0)
	for rows.Next() {
		var r R
		if err := s.meta.scan(rows, &r); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", s.meta.table, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", s.meta.table, err)
	}
	return records, nil
}

func (s *collectionStore[R]) Insert(ctx context.Context, r *R) error {
	query, args, err := psql.Insert(s.meta.table).
		SetMap(s.meta.values(r)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s insert: %w", s.meta.table, err)
	}

	var id int64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", s.meta.table, err)
	}
	s.meta.setID(r, id)
	return nil
}

func (s *collectionStore[R]) Update(ctx context.Context, r *R) error {
	query, args, err := psql.Update(s.meta.table).
		SetMap(s.meta.values(r)).
		Where(sq.Eq{"id": (*r).RecordID()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s update: %w", s.meta.table, err)
	}

	cmdTag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", s.meta.table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound(s.meta.table, fmt.Sprintf("%d", (*r).RecordID()))
	}
	return nil
}

func (s *collectionStore[R]) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(s.meta.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s delete: %w", s.meta.table, err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", s.meta.table, err)
	}
	return nil
}

type pgxTxManager struct {
	db *pgxpool.Pool
}

func NewTxManager(db *pgxpool.Pool) profile.TxManager {
	return &pgxTxManager{db: db}
}

func (m *pgxTxManager) Begin(ctx context.Context) (profile.UnitOfWork, error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &pgxUnitOfWork{tx: tx}, nil
}

// pgxUnitOfWork hands out collection stores bound to one transaction.
type pgxUnitOfWork struct {
	tx pgx.Tx
}

func (u *pgxUnitOfWork) WorkExperiences() profile.Collection[profile.WorkExperience] {
	return &collectionStore[profile.WorkExperience]{db: u.tx, meta: workExperienceMeta}
}

func (u *pgxUnitOfWork) Educations() profile.Collection[profile.Education] {
	return &collectionStore[profile.Education]{db: u.tx, meta: educationMeta}
}

func (u *pgxUnitOfWork) Languages() profile.Collection[profile.Language] {
	return &collectionStore[profile.Language]{db: u.tx, meta: languageMeta}
}

func (u *pgxUnitOfWork) Certificates() profile.Collection[profile.Certificate] {
	return &collectionStore[profile.Certificate]{db: u.tx, meta: certificateMeta}
}

func (u *pgxUnitOfWork) SkillCategories() skill.CategoryRepository {
	return &postgresSkillCategoryRepo{db: u.tx}
}

func (u *pgxUnitOfWork) Commit(ctx context.Context) error {
	return u.tx.Commit(ctx)
}

func (u *pgxUnitOfWork) Rollback(ctx context.Context) error {
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
