package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walterBrayan/BackTalentHub/internal/application/service"
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

type fakeUnitOfWork struct {
	work      *fakeCollection[profile.WorkExperience]
	edu       *fakeCollection[profile.Education]
	langs     *fakeCollection[profile.Language]
	certs     *fakeCollection[profile.Certificate]
	committed bool
	rolled    bool
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		work:  newWorkCollection(),
		edu:   newFakeCollection(func(r *profile.Education, id int64) { r.ID = id }),
		langs: newFakeCollection(func(r *profile.Language, id int64) { r.ID = id }),
		certs: newFakeCollection(func(r *profile.Certificate, id int64) { r.ID = id }),
	}
}

func (f *fakeUnitOfWork) WorkExperiences() profile.Collection[profile.WorkExperience] {
	return f.work
}
func (f *fakeUnitOfWork) Educations() profile.Collection[profile.Education] { return f.edu }
func (f *fakeUnitOfWork) Languages() profile.Collection[profile.Language]   { return f.langs }
func (f *fakeUnitOfWork) Certificates() profile.Collection[profile.Certificate] {
	return f.certs
}

func (f *fakeUnitOfWork) SkillCategories() skill.CategoryRepository { return nil }

func (f *fakeUnitOfWork) Commit(_ context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeUnitOfWork) Rollback(_ context.Context) error {
	if !f.committed {
		f.rolled = true
	}
	return nil
}

type fakeTxManager struct {
	uow    *fakeUnitOfWork
	begins int
}

func (f *fakeTxManager) Begin(_ context.Context) (profile.UnitOfWork, error) {
	f.begins++
	return f.uow, nil
}

type recordingPublisher struct {
	events []service.ProfileEvent
}

func (r *recordingPublisher) PublishProfileEvent(_ context.Context, evt service.ProfileEvent) error {
	r.events = append(r.events, evt)
	return nil
}

func TestReplaceWorkExperiences_ProfileNotFound(t *testing.T) {
	repo := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{}}
	tx := &fakeTxManager{uow: newFakeUnitOfWork()}
	uc := NewCollectionsUseCase(repo, tx, nil, logger.NewNop())

	err := uc.ReplaceWorkExperiences(context.Background(), uuid.New(), []*WorkExperiencePatch{
		{Company: strPtr("Acme"), Position: strPtr("Dev"), StartDate: strPtr("2020-01-01")},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, 0, tx.begins)
}

func TestReplaceWorkExperiences_CommitsAndPublishes(t *testing.T) {
	userID := uuid.New()
	p := &profile.Profile{ID: uuid.New(), UserID: userID}
	repo := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{userID: p}}
	tx := &fakeTxManager{uow: newFakeUnitOfWork()}
	pub := &recordingPublisher{}
	uc := NewCollectionsUseCase(repo, tx, pub, logger.NewNop())

	err := uc.ReplaceWorkExperiences(context.Background(), userID, []*WorkExperiencePatch{
		{Company: strPtr("Acme"), Position: strPtr("Dev"), StartDate: strPtr("2020-01-01")},
	})
	require.NoError(t, err)
	assert.True(t, tx.uow.committed)
	assert.False(t, tx.uow.rolled)
	require.Len(t, pub.events, 1)
	assert.Equal(t, "work_experience", pub.events[0].Collection)
	assert.Equal(t, userID, pub.events[0].UserID)
}

func TestReplaceWorkExperiences_RollsBackOnFailure(t *testing.T) {
	userID := uuid.New()
	p := &profile.Profile{ID: uuid.New(), UserID: userID}
	repo := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{userID: p}}
	uow := newFakeUnitOfWork()
	uow.work.failInsert = errors.New("disk full")
	tx := &fakeTxManager{uow: uow}
	uc := NewCollectionsUseCase(repo, tx, nil, logger.NewNop())

	err := uc.ReplaceWorkExperiences(context.Background(), userID, []*WorkExperiencePatch{
		{Company: strPtr("Acme"), Position: strPtr("Dev"), StartDate: strPtr("2020-01-01")},
	})
	require.Error(t, err)
	assert.False(t, uow.committed)
	assert.True(t, uow.rolled)
}

func TestReplaceLanguages_RequiredFields(t *testing.T) {
	userID := uuid.New()
	p := &profile.Profile{ID: uuid.New(), UserID: userID}
	repo := &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{userID: p}}
	tx := &fakeTxManager{uow: newFakeUnitOfWork()}
	uc := NewCollectionsUseCase(repo, tx, nil, logger.NewNop())

	err := uc.ReplaceLanguages(context.Background(), userID, []*LanguagePatch{
		{Language: strPtr("Spanish")},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.False(t, tx.uow.committed)
}
