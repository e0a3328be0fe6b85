package resume

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/walterBrayan/BackTalentHub/internal/domain/resume"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

// ResumeUseCase manages the user's stored resume documents. Every lookup is
// scoped to the owning user; a resume belonging to someone else is reported
// as not found rather than forbidden.
type ResumeUseCase struct {
	resumeRepo resume.Repository
	logger     logger.Logger
}

func NewResumeUseCase(resumes resume.Repository, log logger.Logger) *ResumeUseCase {
	return &ResumeUseCase{resumeRepo: resumes, logger: log}
}

type CreateResumeInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Category    string
	FileURL     *string
}

func (uc *ResumeUseCase) ExecuteCreate(ctx context.Context, input CreateResumeInput) (*resume.Resume, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.NewInvalidInput("resume title is required", nil)
	}

	now := time.Now().UTC()
	r := &resume.Resume{
		UserID:      input.UserID,
		Title:       title,
		Description: input.Description,
		Category:    input.Category,
		Status:      resume.StatusActive,
		FileURL:     input.FileURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.resumeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

type UpdateResumeInput struct {
	UserID      uuid.UUID
	ResumeID    int64
	Title       *string
	Description *string
	Category    *string
	Status      *string
	FileURL     *string
}

// ExecuteUpdate patches submitted fields only; absent fields keep their
// stored value.
func (uc *ResumeUseCase) ExecuteUpdate(ctx context.Context, input UpdateResumeInput) (*resume.Resume, error) {
	r, err := uc.resumeRepo.FindByID(ctx, input.ResumeID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperror.NewInvalidInput("resume title cannot be blank", nil)
		}
		r.Title = title
	}
	if input.Description != nil {
		r.Description = *input.Description
	}
	if input.Category != nil {
		r.Category = *input.Category
	}
	if input.Status != nil {
		if *input.Status != resume.StatusActive && *input.Status != resume.StatusArchived {
			return nil, apperror.NewInvalidInput("unknown resume status", nil)
		}
		r.Status = *input.Status
	}
	if input.FileURL != nil {
		r.FileURL = input.FileURL
	}
	r.UpdatedAt = time.Now().UTC()

	if err := uc.resumeRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *ResumeUseCase) ExecuteGet(ctx context.Context, userID uuid.UUID, resumeID int64) (*resume.Resume, error) {
	return uc.resumeRepo.FindByID(ctx, resumeID, userID)
}

func (uc *ResumeUseCase) ExecuteList(ctx context.Context, userID uuid.UUID) ([]*resume.Resume, error) {
	resumes, err := uc.resumeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if resumes == nil {
		resumes = []*resume.Resume{}
	}
	return resumes, nil
}

// ExecuteArchive soft-deletes by flipping the status; the row stays for the
// user's history.
func (uc *ResumeUseCase) ExecuteArchive(ctx context.Context, userID uuid.UUID, resumeID int64) error {
	r, err := uc.resumeRepo.FindByID(ctx, resumeID, userID)
	if err != nil {
		return err
	}
	r.Status = resume.StatusArchived
	r.UpdatedAt = time.Now().UTC()
	return uc.resumeRepo.Update(ctx, r)
}
