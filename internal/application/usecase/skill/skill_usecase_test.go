package skill

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
	"github.com/walterBrayan/BackTalentHub/internal/domain/skill"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*profile.Profile
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, apperror.NewNotFound("profile", userID.String())
	}
	return p, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeProfileRepo) GetAggregate(_ context.Context, _ uuid.UUID) (*profile.Aggregate, error) {
	return nil, errors.New("not implemented")
}

type fakeCategoryRepo struct {
	categories map[skill.Type]*skill.Category
	upserts    int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[skill.Type]*skill.Category{}}
}

func (f *fakeCategoryRepo) GetByProfileAndType(_ context.Context, profileID uuid.UUID, t skill.Type) (*skill.Category, error) {
	if c, ok := f.categories[t]; ok {
		cp := *c
		cp.Skills = append([]string(nil), c.Skills...)
		return &cp, nil
	}
	return &skill.Category{ProfileID: profileID, Type: t, Skills: []string{}}, nil
}

func (f *fakeCategoryRepo) Upsert(_ context.Context, c *skill.Category) error {
	f.upserts++
	cp := *c
	f.categories[c.Type] = &cp
	return nil
}

// fakeSkillUow stages category writes and only flushes them into the base
// repo on Commit, mirroring the transaction boundary of the real store.
type fakeSkillUow struct {
	base      *fakeCategoryRepo
	pending   map[skill.Type]*skill.Category
	failOn    skill.Type
	committed bool
	rolled    bool
}

func (f *fakeSkillUow) SkillCategories() skill.CategoryRepository { return f }

func (f *fakeSkillUow) GetByProfileAndType(ctx context.Context, profileID uuid.UUID, t skill.Type) (*skill.Category, error) {
	if c, ok := f.pending[t]; ok {
		cp := *c
		cp.Skills = append([]string(nil), c.Skills...)
		return &cp, nil
	}
	return f.base.GetByProfileAndType(ctx, profileID, t)
}

func (f *fakeSkillUow) Upsert(_ context.Context, c *skill.Category) error {
	if c.Type == f.failOn {
		return errors.New("write rejected")
	}
	cp := *c
	f.pending[c.Type] = &cp
	return nil
}

func (f *fakeSkillUow) WorkExperiences() profile.Collection[profile.WorkExperience] { return nil }
func (f *fakeSkillUow) Educations() profile.Collection[profile.Education]           { return nil }
func (f *fakeSkillUow) Languages() profile.Collection[profile.Language]             { return nil }
func (f *fakeSkillUow) Certificates() profile.Collection[profile.Certificate]       { return nil }

func (f *fakeSkillUow) Commit(ctx context.Context) error {
	for _, c := range f.pending {
		if err := f.base.Upsert(ctx, c); err != nil {
			return err
		}
	}
	f.committed = true
	return nil
}

func (f *fakeSkillUow) Rollback(_ context.Context) error {
	if !f.committed {
		f.rolled = true
		f.pending = map[skill.Type]*skill.Category{}
	}
	return nil
}

type fakeSkillTx struct {
	base   *fakeCategoryRepo
	failOn skill.Type
	last   *fakeSkillUow
}

func (f *fakeSkillTx) Begin(_ context.Context) (profile.UnitOfWork, error) {
	f.last = &fakeSkillUow{
		base:    f.base,
		pending: map[skill.Type]*skill.Category{},
		failOn:  f.failOn,
	}
	return f.last, nil
}

type fakeCatalogRepo struct {
	entries []skill.StandardSkill
}

func (f *fakeCatalogRepo) Search(_ context.Context, fragment string, t skill.Type, limit int) ([]skill.StandardSkill, error) {
	var out []skill.StandardSkill
	for _, e := range f.entries {
		if e.Type != t {
			continue
		}
		if !strings.Contains(e.NormalizedName, fragment) {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func newSkillUseCase(t *testing.T) (*SkillUseCase, uuid.UUID, *fakeCategoryRepo, *fakeCatalogRepo) {
	t.Helper()
	userID := uuid.New()
	profiles := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{
		userID: {ID: uuid.New(), UserID: userID},
	}}
	categories := newFakeCategoryRepo()
	catalog := &fakeCatalogRepo{}
	tx := &fakeSkillTx{base: categories}
	uc := NewSkillUseCase(profiles, categories, catalog, tx, nil, logger.NewNop())
	return uc, userID, categories, catalog
}

func TestAddSkills_UnionsWithExisting(t *testing.T) {
	uc, userID, categories, _ := newSkillUseCase(t)
	categories.categories[skill.TypeTechnical] = &skill.Category{
		ID: 1, Type: skill.TypeTechnical, Skills: []string{"go", "sql"},
	}

	err := uc.ExecuteAddSkills(context.Background(), AddSkillsInput{
		UserID:    userID,
		Technical: []string{"sql", "docker", "go"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"docker", "go", "sql"}, categories.categories[skill.TypeTechnical].Skills)
}

func TestAddSkills_Idempotent(t *testing.T) {
	uc, userID, categories, _ := newSkillUseCase(t)

	input := AddSkillsInput{UserID: userID, Technical: []string{"go", "docker"}, Soft: []string{"communication"}}
	require.NoError(t, uc.ExecuteAddSkills(context.Background(), input))
	first := append([]string(nil), categories.categories[skill.TypeTechnical].Skills...)

	require.NoError(t, uc.ExecuteAddSkills(context.Background(), input))
	assert.Equal(t, first, categories.categories[skill.TypeTechnical].Skills)
	assert.Equal(t, []string{"communication"}, categories.categories[skill.TypeSoft].Skills)
}

func TestAddSkills_SkipsEmptyCategory(t *testing.T) {
	uc, userID, categories, _ := newSkillUseCase(t)

	err := uc.ExecuteAddSkills(context.Background(), AddSkillsInput{
		UserID:    userID,
		Technical: []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, categories.upserts)
	_, hasSoft := categories.categories[skill.TypeSoft]
	assert.False(t, hasSoft)
}

func TestAddSkills_SoftFailureLeavesTechnicalUntouched(t *testing.T) {
	userID := uuid.New()
	profiles := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{
		userID: {ID: uuid.New(), UserID: userID},
	}}
	categories := newFakeCategoryRepo()
	categories.categories[skill.TypeTechnical] = &skill.Category{
		ID: 1, Type: skill.TypeTechnical, Skills: []string{"go"},
	}
	tx := &fakeSkillTx{base: categories, failOn: skill.TypeSoft}
	uc := NewSkillUseCase(profiles, categories, &fakeCatalogRepo{}, tx, nil, logger.NewNop())

	err := uc.ExecuteAddSkills(context.Background(), AddSkillsInput{
		UserID:    userID,
		Technical: []string{"docker"},
		Soft:      []string{"communication"},
	})
	require.Error(t, err)

	// The technical union must not survive the failed soft write.
	assert.Equal(t, []string{"go"}, categories.categories[skill.TypeTechnical].Skills)
	_, hasSoft := categories.categories[skill.TypeSoft]
	assert.False(t, hasSoft)
	assert.Equal(t, 0, categories.upserts)
	require.NotNil(t, tx.last)
	assert.True(t, tx.last.rolled)
	assert.False(t, tx.last.committed)
}

func TestUpdateSkills_Replaces(t *testing.T) {
	uc, userID, categories, _ := newSkillUseCase(t)
	categories.categories[skill.TypeSoft] = &skill.Category{
		ID: 2, Type: skill.TypeSoft, Skills: []string{"leadership", "communication"},
	}

	err := uc.ExecuteUpdateSkills(context.Background(), UpdateSkillsInput{
		UserID: userID,
		Type:   skill.TypeSoft,
		Skills: []string{"teamwork", "teamwork", " teamwork "},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"teamwork"}, categories.categories[skill.TypeSoft].Skills)
}

func TestUpdateSkills_RejectsUnknownType(t *testing.T) {
	uc, userID, _, _ := newSkillUseCase(t)

	err := uc.ExecuteUpdateSkills(context.Background(), UpdateSkillsInput{
		UserID: userID,
		Type:   skill.Type("weird"),
		Skills: []string{"go"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestGetUserSkills_EmptyCategoriesAreNotNil(t *testing.T) {
	uc, userID, _, _ := newSkillUseCase(t)

	out, err := uc.ExecuteGetUserSkills(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, out.Technical)
	assert.NotNil(t, out.Soft)
	assert.Empty(t, out.Technical)
	assert.Empty(t, out.Soft)
}

func TestSearchSkills_ExcludesOwned(t *testing.T) {
	uc, userID, categories, catalog := newSkillUseCase(t)
	categories.categories[skill.TypeTechnical] = &skill.Category{
		ID: 1, Type: skill.TypeTechnical, Skills: []string{"golang"},
	}
	catalog.entries = []skill.StandardSkill{
		{ID: 1, NormalizedName: "go", DisplayName: "Go", Type: skill.TypeTechnical},
		{ID: 2, NormalizedName: "golang", DisplayName: "Golang", Type: skill.TypeTechnical},
		{ID: 3, NormalizedName: "google cloud", DisplayName: "Google Cloud", Type: skill.TypeTechnical},
	}

	out, err := uc.ExecuteSearchSkills(context.Background(), SearchSkillsInput{
		UserID:   userID,
		Fragment: "go",
		Type:     skill.TypeTechnical,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, s := range out {
		assert.NotEqual(t, "golang", s.NormalizedName)
	}
}

func TestSearchSkills_CapsAtTen(t *testing.T) {
	uc, userID, _, catalog := newSkillUseCase(t)
	for i := int64(0); i < 30; i++ {
		catalog.entries = append(catalog.entries, skill.StandardSkill{
			ID:             i,
			NormalizedName: "java " + strings.Repeat("x", int(i)+1),
			Type:           skill.TypeTechnical,
		})
	}

	out, err := uc.ExecuteSearchSkills(context.Background(), SearchSkillsInput{
		UserID:   userID,
		Fragment: "java",
		Type:     skill.TypeTechnical,
	})
	require.NoError(t, err)
	assert.Len(t, out, 10)
}
