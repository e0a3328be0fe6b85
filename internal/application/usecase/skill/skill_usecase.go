package skill

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/walterBrayan/BackTalentHub/internal/application/service"
	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
	"github.com/walterBrayan/BackTalentHub/internal/domain/skill"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

const searchLimit = 10

// SkillUseCase maintains one deduplicated label set per (profile, category)
// pair. Persisted sets are kept sorted so equal inputs always produce equal
// stored state.
type SkillUseCase struct {
	profileRepo  profile.Repository
	categoryRepo skill.CategoryRepository
	catalogRepo  skill.CatalogRepository
	txManager    profile.TxManager
	events       service.EventPublisher
	logger       logger.Logger
}

func NewSkillUseCase(
	profiles profile.Repository,
	categories skill.CategoryRepository,
	catalog skill.CatalogRepository,
	tx profile.TxManager,
	events service.EventPublisher,
	log logger.Logger,
) *SkillUseCase {
	return &SkillUseCase{
		profileRepo:  profiles,
		categoryRepo: categories,
		catalogRepo:  catalog,
		txManager:    tx,
		events:       events,
		logger:       log,
	}
}

type AddSkillsInput struct {
	UserID    uuid.UUID
	Technical []string
	Soft      []string
}

// ExecuteAddSkills unions the submitted labels into each category's
// existing set. A category with no record yet is created seeded with the
// submitted labels. Both category writes run inside one transaction, so a
// request touching both sets lands or fails as a whole.
func (uc *SkillUseCase) ExecuteAddSkills(ctx context.Context, input AddSkillsInput) error {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return err
	}

	uow, err := uc.txManager.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin transaction", err)
	}
	defer uow.Rollback(ctx)

	store := uow.SkillCategories()
	byType := map[skill.Type][]string{
		skill.TypeTechnical: input.Technical,
		skill.TypeSoft:      input.Soft,
	}
	for _, t := range skill.Types() {
		submitted := byType[t]
		if len(submitted) == 0 {
			continue
		}
		cat, err := store.GetByProfileAndType(ctx, p.ID, t)
		if err != nil {
			return err
		}
		cat.Skills = mergeLabels(cat.Skills, submitted)
		if err := store.Upsert(ctx, cat); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit skill update", err)
	}

	uc.publish(ctx, input.UserID, p.ID)
	return nil
}

type UpdateSkillsInput struct {
	UserID uuid.UUID
	Type   skill.Type
	Skills []string
}

// ExecuteUpdateSkills overwrites one category's set wholesale.
func (uc *SkillUseCase) ExecuteUpdateSkills(ctx context.Context, input UpdateSkillsInput) error {
	if !input.Type.Valid() {
		return apperror.NewInvalidInput("unknown skill type", nil)
	}
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return err
	}

	cat, err := uc.categoryRepo.GetByProfileAndType(ctx, p.ID, input.Type)
	if err != nil {
		return err
	}
	cat.Skills = mergeLabels(nil, input.Skills)
	if err := uc.categoryRepo.Upsert(ctx, cat); err != nil {
		return err
	}

	uc.publish(ctx, input.UserID, p.ID)
	return nil
}

type GetUserSkillsOutput struct {
	Technical []string
	Soft      []string
}

// ExecuteGetUserSkills returns both category sets; a category without a
// record yields an empty slice, never nil.
func (uc *SkillUseCase) ExecuteGetUserSkills(ctx context.Context, userID uuid.UUID) (*GetUserSkillsOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &GetUserSkillsOutput{Technical: []string{}, Soft: []string{}}
	for _, t := range skill.Types() {
		cat, err := uc.categoryRepo.GetByProfileAndType(ctx, p.ID, t)
		if err != nil {
			return nil, err
		}
		labels := cat.Skills
		if labels == nil {
			labels = []string{}
		}
		switch t {
		case skill.TypeTechnical:
			out.Technical = labels
		case skill.TypeSoft:
			out.Soft = labels
		}
	}
	return out, nil
}

type SearchSkillsInput struct {
	UserID   uuid.UUID
	Fragment string
	Type     skill.Type
}

// ExecuteSearchSkills returns up to 10 catalog entries matching the
// fragment, excluding labels the caller already owns for that category.
// Results are ordered by normalized name so identical inputs yield
// identical output.
func (uc *SkillUseCase) ExecuteSearchSkills(ctx context.Context, input SearchSkillsInput) ([]skill.StandardSkill, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewInvalidInput("unknown skill type", nil)
	}
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	cat, err := uc.categoryRepo.GetByProfileAndType(ctx, p.ID, input.Type)
	if err != nil {
		return nil, err
	}
	// Owned labels keep their display casing; catalog names are normalized.
	owned := make(map[string]struct{}, len(cat.Skills))
	for _, s := range cat.Skills {
		owned[strings.ToLower(s)] = struct{}{}
	}

	// Over-fetch so exclusion does not starve the page.
	matches, err := uc.catalogRepo.Search(ctx, strings.ToLower(strings.TrimSpace(input.Fragment)), input.Type, searchLimit+len(owned))
	if err != nil {
		return nil, err
	}

	results := make([]skill.StandardSkill, 0, searchLimit)
	for _, m := range matches {
		if _, has := owned[m.NormalizedName]; has {
			continue
		}
		results = append(results, m)
		if len(results) == searchLimit {
			break
		}
	}
	return results, nil
}

// mergeLabels unions both lists into a sorted, deduplicated set.
func mergeLabels(existing, submitted []string) []string {
	set := make(map[string]struct{}, len(existing)+len(submitted))
	for _, s := range existing {
		if s = strings.TrimSpace(s); s != "" {
			set[s] = struct{}{}
		}
	}
	for _, s := range submitted {
		if s = strings.TrimSpace(s); s != "" {
			set[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (uc *SkillUseCase) publish(ctx context.Context, userID, profileID uuid.UUID) {
	if uc.events == nil {
		return
	}
	evt := service.ProfileEvent{
		Type:       "profile.skills.updated",
		UserID:     userID,
		ProfileID:  profileID,
		Collection: "skills",
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.events.PublishProfileEvent(ctx, evt); err != nil {
		uc.logger.Warn("failed to publish skill event", zap.Error(err))
	}
}
