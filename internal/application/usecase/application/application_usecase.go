package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/walterBrayan/BackTalentHub/internal/domain/application"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

// ApplicationUseCase tracks the job postings a user applied to. Like
// resumes, every lookup is scoped to the owning user.
type ApplicationUseCase struct {
	appRepo application.Repository
	logger  logger.Logger
}

func NewApplicationUseCase(apps application.Repository, log logger.Logger) *ApplicationUseCase {
	return &ApplicationUseCase{appRepo: apps, logger: log}
}

type CreateApplicationInput struct {
	UserID      uuid.UUID
	Position    string
	Company     string
	URL         *string
	Description string
	Status      string
}

func (uc *ApplicationUseCase) ExecuteCreate(ctx context.Context, input CreateApplicationInput) (*application.Application, error) {
	position := strings.TrimSpace(input.Position)
	company := strings.TrimSpace(input.Company)
	if position == "" || company == "" {
		return nil, apperror.NewInvalidInput("position and company are required", nil)
	}

	status := input.Status
	if status == "" {
		status = application.StatusInProgress
	}
	if !application.ValidStatus(status) {
		return nil, apperror.NewInvalidInput("unknown application status", nil)
	}

	now := time.Now().UTC()
	a := &application.Application{
		UserID:      input.UserID,
		Position:    position,
		Company:     company,
		URL:         input.URL,
		Description: input.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.appRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

type UpdateApplicationInput struct {
	UserID        uuid.UUID
	ApplicationID int64
	Position      *string
	Company       *string
	URL           *string
	Description   *string
	Status        *string
}

func (uc *ApplicationUseCase) ExecuteUpdate(ctx context.Context, input UpdateApplicationInput) (*application.Application, error) {
	a, err := uc.appRepo.FindByID(ctx, input.ApplicationID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Position != nil {
		if strings.TrimSpace(*input.Position) == "" {
			return nil, apperror.NewInvalidInput("position cannot be blank", nil)
		}
		a.Position = strings.TrimSpace(*input.Position)
	}
	if input.Company != nil {
		if strings.TrimSpace(*input.Company) == "" {
			return nil, apperror.NewInvalidInput("company cannot be blank", nil)
		}
		a.Company = strings.TrimSpace(*input.Company)
	}
	if input.URL != nil {
		a.URL = input.URL
	}
	if input.Description != nil {
		a.Description = *input.Description
	}
	if input.Status != nil {
		if !application.ValidStatus(*input.Status) {
			return nil, apperror.NewInvalidInput("unknown application status", nil)
		}
		a.Status = *input.Status
	}
	a.UpdatedAt = time.Now().UTC()

	if err := uc.appRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *ApplicationUseCase) ExecuteGet(ctx context.Context, userID uuid.UUID, applicationID int64) (*application.Application, error) {
	return uc.appRepo.FindByID(ctx, applicationID, userID)
}

func (uc *ApplicationUseCase) ExecuteList(ctx context.Context, userID uuid.UUID) ([]*application.Application, error) {
	apps, err := uc.appRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []*application.Application{}
	}
	return apps, nil
}
