package application

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	StatusInProgress = "in_progress"
	StatusInterview  = "interview"
	StatusRejected   = "rejected"
	StatusAccepted   = "accepted"
)

// Application tracks one job posting the user applied to.
type Application struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	URL         *string   `json:"url"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusInProgress, StatusInterview, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

type Repository interface {
	Save(ctx context.Context, a *Application) error
	Update(ctx context.Context, a *Application) error
	FindByID(ctx context.Context, id int64, userID uuid.UUID) (*Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Application, error)
}
