package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

type Resume struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	FileURL     *string   `json:"file_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, r *Resume) error
	Update(ctx context.Context, r *Resume) error
	FindByID(ctx context.Context, id int64, userID uuid.UUID) (*Resume, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Resume, error)
}
