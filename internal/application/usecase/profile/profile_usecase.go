package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
	"github.com/walterBrayan/BackTalentHub/internal/domain/user"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	logger      logger.Logger
}

func NewProfileUseCase(profiles profile.Repository, users user.Repository, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profiles,
		userRepo:    users,
		logger:      log,
	}
}

type GetProfileInput struct {
	UserID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	UserID      uuid.UUID
	Name        *string
	Email       *string
	Phone       *string
	Address     *string
	Headline    *string
	LinkedinURL *string
	GithubURL   *string
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpdateProfile upserts the profile header and, when user fields are
// submitted, patches the owning user record. Absent fields keep their
// stored value.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil || input.Email != nil || input.Phone != nil || input.Address != nil {
		if input.Name != nil {
			u.Name = *input.Name
		}
		if input.Email != nil {
			u.Email = *input.Email
		}
		if input.Phone != nil {
			u.Phone = input.Phone
		}
		if input.Address != nil {
			u.Address = input.Address
		}
		if err := uc.userRepo.Update(ctx, u); err != nil {
			return nil, err
		}
	}

	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if errors.Is(err, apperror.ErrNotFound) {
		// First write creates the profile row.
		p = &profile.Profile{ID: uuid.New(), UserID: input.UserID}
	} else if err != nil {
		return nil, err
	}
	if input.Headline != nil {
		p.Headline = input.Headline
	}
	if input.LinkedinURL != nil {
		p.LinkedinURL = input.LinkedinURL
	}
	if input.GithubURL != nil {
		p.GithubURL = input.GithubURL
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return &UpdateProfileOutput{Profile: p}, nil
}

type GetAggregateInput struct {
	UserID uuid.UUID
}

type GetAggregateOutput struct {
	User      *user.User
	Aggregate *profile.Aggregate
}

func (uc *ProfileUseCase) ExecuteGetAggregate(ctx context.Context, input GetAggregateInput) (*GetAggregateOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	agg, err := uc.profileRepo.GetAggregate(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetAggregateOutput{User: u, Aggregate: agg}, nil
}
