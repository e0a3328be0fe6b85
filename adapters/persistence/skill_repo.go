package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/walterBrayan/BackTalentHub/internal/domain/skill"
)

// The skill_type column stores a smallint. The mapping never leaves this
// file; domain code works with skill.Type values only.
func typeToSmallint(t skill.Type) int16 {
	if t == skill.TypeSoft {
		return 2
	}
	return 1
}

func smallintToType(v int16) skill.Type {
	if v == 2 {
		return skill.TypeSoft
	}
	return skill.TypeTechnical
}

// postgresSkillCategoryRepo runs over querier, so it serves pool-level reads
// and transaction-scoped writes with the same code.
type postgresSkillCategoryRepo struct {
	db querier
}

func NewPostgresSkillCategoryRepo(db *pgxpool.Pool) skill.CategoryRepository {
	return &postgresSkillCategoryRepo{db: db}
}

func (r *postgresSkillCategoryRepo) GetByProfileAndType(ctx context.Context, profileID uuid.UUID, t skill.Type) (*skill.Category, error) {
	query := `
		SELECT id, profile_id, skill_type, skills
		FROM skill_categories
		WHERE profile_id = $1 AND skill_type = $2
	`
	c := &skill.Category{}
	var rawType int16
	err := r.db.QueryRow(ctx, query, profileID, typeToSmallint(t)).Scan(
		&c.ID,
		&c.ProfileID,
		&rawType,
		&c.Skills,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No row yet: hand back an empty set the caller can fill in.
			return &skill.Category{ProfileID: profileID, Type: t, Skills: []string{}}, nil
		}
		return nil, fmt.Errorf("failed to query skill category: %w", err)
	}
	c.Type = smallintToType(rawType)
	return c, nil
}

func (r *postgresSkillCategoryRepo) Upsert(ctx context.Context, c *skill.Category) error {
	query := `
		INSERT INTO skill_categories (profile_id, skill_type, skills)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile_id, skill_type) DO UPDATE SET skills = EXCLUDED.skills
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, c.ProfileID, typeToSmallint(c.Type), c.Skills).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert skill category: %w", err)
	}
	return nil
}

type postgresSkillCatalogRepo struct {
	db *pgxpool.Pool
}

func NewPostgresSkillCatalogRepo(db *pgxpool.Pool) skill.CatalogRepository {
	return &postgresSkillCatalogRepo{db: db}
}

func (r *postgresSkillCatalogRepo) Search(ctx context.Context, fragment string, t skill.Type, limit int) ([]skill.StandardSkill, error) {
	query, args, err := psql.Select("id", "normalized_name", "display_name", "skill_type").
		From("standard_skills").
		Where(sq.Eq{"skill_type": typeToSmallint(t)}).
		Where(sq.Like{"normalized_name": "%" + fragment + "%"}).
		OrderBy("normalized_name").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills catalog: %w", err)
	}
	defer rows.Close()

	skills := make([]skill.StandardSkill, 0)
	for rows.Next() {
		var s skill.StandardSkill
		var rawType int16
		if err := rows.Scan(&s.ID, &s.NormalizedName, &s.DisplayName, &rawType); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		s.Type = smallintToType(rawType)
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog rows: %w", err)
	}
	return skills, nil
}
