package application

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walterBrayan/BackTalentHub/internal/domain/application"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type fakeAppRepo struct {
	records map[int64]*application.Application
	nextID  int64
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{records: map[int64]*application.Application{}, nextID: 1}
}

func (f *fakeAppRepo) Save(_ context.Context, a *application.Application) error {
	a.ID = f.nextID
	f.nextID++
	cp := *a
	f.records[a.ID] = &cp
	return nil
}

func (f *fakeAppRepo) Update(_ context.Context, a *application.Application) error {
	cp := *a
	f.records[a.ID] = &cp
	return nil
}

func (f *fakeAppRepo) FindByID(_ context.Context, id int64, userID uuid.UUID) (*application.Application, error) {
	a, ok := f.records[id]
	if !ok || a.UserID != userID {
		return nil, apperror.NewNotFound("application", "?")
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*application.Application, error) {
	var out []*application.Application
	for _, a := range f.records {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func TestCreateApplication_DefaultsToInProgress(t *testing.T) {
	uc := NewApplicationUseCase(newFakeAppRepo(), logger.NewNop())

	a, err := uc.ExecuteCreate(context.Background(), CreateApplicationInput{
		UserID:   uuid.New(),
		Position: "Go Engineer",
		Company:  "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, application.StatusInProgress, a.Status)
	assert.NotZero(t, a.ID)
}

func TestCreateApplication_UnknownStatusRejected(t *testing.T) {
	uc := NewApplicationUseCase(newFakeAppRepo(), logger.NewNop())

	_, err := uc.ExecuteCreate(context.Background(), CreateApplicationInput{
		UserID:   uuid.New(),
		Position: "Go Engineer",
		Company:  "Acme",
		Status:   "ghosted",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestCreateApplication_RequiresPositionAndCompany(t *testing.T) {
	uc := NewApplicationUseCase(newFakeAppRepo(), logger.NewNop())

	_, err := uc.ExecuteCreate(context.Background(), CreateApplicationInput{
		UserID:  uuid.New(),
		Company: "Acme",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestUpdateApplication_MovesStatus(t *testing.T) {
	repo := newFakeAppRepo()
	uc := NewApplicationUseCase(repo, logger.NewNop())
	userID := uuid.New()

	created, err := uc.ExecuteCreate(context.Background(), CreateApplicationInput{
		UserID: userID, Position: "Go Engineer", Company: "Acme",
	})
	require.NoError(t, err)

	interview := application.StatusInterview
	updated, err := uc.ExecuteUpdate(context.Background(), UpdateApplicationInput{
		UserID:        userID,
		ApplicationID: created.ID,
		Status:        &interview,
	})
	require.NoError(t, err)
	assert.Equal(t, application.StatusInterview, updated.Status)
	assert.Equal(t, "Acme", updated.Company)
}

func TestUpdateApplication_OtherUsersApplicationIsNotFound(t *testing.T) {
	repo := newFakeAppRepo()
	uc := NewApplicationUseCase(repo, logger.NewNop())

	created, err := uc.ExecuteCreate(context.Background(), CreateApplicationInput{
		UserID: uuid.New(), Position: "Go Engineer", Company: "Acme",
	})
	require.NoError(t, err)

	status := application.StatusAccepted
	_, err = uc.ExecuteUpdate(context.Background(), UpdateApplicationInput{
		UserID:        uuid.New(),
		ApplicationID: created.ID,
		Status:        &status,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestListApplications_EmptyIsNotNil(t *testing.T) {
	uc := NewApplicationUseCase(newFakeAppRepo(), logger.NewNop())

	out, err := uc.ExecuteList(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
