package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/walterBrayan/BackTalentHub/internal/domain/skill"
)

// Profile is the professional-data aggregate owned by one user. Child
// collections (work experience, education, languages, certificates) belong
// to exactly one profile and are removed with it.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Headline    *string   `json:"headline"`
	LinkedinURL *string   `json:"linkedin_url"`
	GithubURL   *string   `json:"github_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Record is implemented by every child collection entity. Child ids are
// server-assigned; a zero id means the record has not been persisted yet.
type Record interface {
	RecordID() int64
}

type WorkExperience struct {
	ID          int64      `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
	CurrentJob  bool       `json:"current_job"`
}

func (w WorkExperience) RecordID() int64 { return w.ID }

type Education struct {
	ID          int64      `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
}

func (e Education) RecordID() int64 { return e.ID }

type Language struct {
	ID        int64     `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Name      string    `json:"language"`
	Level     string    `json:"level"`
}

func (l Language) RecordID() int64 { return l.ID }

type Certificate struct {
	ID          int64      `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	Name        string     `json:"name"`
	Institution string     `json:"institution"`
	Date        *time.Time `json:"date"`
	URL         *string    `json:"url"`
}

func (c Certificate) RecordID() int64 { return c.ID }

// Aggregate is the fully loaded profile used by the read endpoint and by
// resume generation.
type Aggregate struct {
	Profile         Profile
	WorkExperiences []WorkExperience
	Educations      []Education
	Languages       []Language
	Certificates    []Certificate
}

type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
	GetAggregate(ctx context.Context, userID uuid.UUID) (*Aggregate, error)
}

// Collection is a transaction-scoped store for one child collection type.
// Insert assigns the server id on the passed record.
type Collection[R Record] interface {
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]R, error)
	Insert(ctx context.Context, r *R) error
	Update(ctx context.Context, r *R) error
	Delete(ctx context.Context, id int64) error
}

// UnitOfWork groups the child collection stores behind one database
// transaction. Either Commit applies every mutation or Rollback discards
// them all; callers defer Rollback and call Commit last.
type UnitOfWork interface {
	WorkExperiences() Collection[WorkExperience]
	Educations() Collection[Education]
	Languages() Collection[Language]
	Certificates() Collection[Certificate]
	// SkillCategories writes skill sets inside the same transaction, so a
	// batch touching both categories lands or fails as one.
	SkillCategories() skill.CategoryRepository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type TxManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
