package skill

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Type is the skill category discriminator. The wire format and the catalog
// table use their own encodings; domain code only ever sees these values.
type Type string

const (
	TypeTechnical Type = "technical"
	TypeSoft      Type = "soft"
)

// Types lists the categories in a fixed order, used wherever both sets are
// read or written.
func Types() []Type {
	return []Type{TypeTechnical, TypeSoft}
}

// ParseType accepts the wire aliases used by the frontend ("tech"/"soft")
// as well as the canonical names.
func ParseType(s string) (Type, error) {
	switch s {
	case "tech", "technical":
		return TypeTechnical, nil
	case "soft":
		return TypeSoft, nil
	}
	return "", fmt.Errorf("unknown skill type %q", s)
}

func (t Type) Valid() bool {
	return t == TypeTechnical || t == TypeSoft
}

// Category holds the deduplicated label set for one (profile, type) pair.
// At most one category row exists per pair.
type Category struct {
	ID        int64     `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Type      Type      `json:"type"`
	Skills    []string  `json:"skills"`
}

// StandardSkill is an entry of the global skills catalog.
type StandardSkill struct {
	ID             int64  `json:"id"`
	NormalizedName string `json:"value"`
	DisplayName    string `json:"label"`
	Type           Type   `json:"type"`
}

type CategoryRepository interface {
	// GetByProfileAndType returns an empty category (no id, empty label set)
	// when no row exists yet.
	GetByProfileAndType(ctx context.Context, profileID uuid.UUID, t Type) (*Category, error)
	Upsert(ctx context.Context, c *Category) error
}

type CatalogRepository interface {
	// Search matches the fragment case-insensitively against normalized
	// names of the given type, ordered by normalized name.
	Search(ctx context.Context, fragment string, t Type, limit int) ([]StandardSkill, error)
}
