package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walterBrayan/BackTalentHub/internal/domain/user"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/auth"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*user.User{}}
}

func (f *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return apperror.NewConflict("user", "email", u.Email)
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", id.String())
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	return u, nil
}

func newJWT() *auth.JWTService {
	return auth.NewJWTService("test-secret", time.Hour)
}

func TestRegister_CreatesUserAndToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUseCase(repo, newJWT(), logger.NewNop())

	out, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "Jane Roe",
		Email:    "Jane@Example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "jane@example.com", out.User.Email)

	stored, err := repo.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("s3cret-pass", stored.PasswordHash))
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUseCase(repo, newJWT(), logger.NewNop())

	input := RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"}
	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	uc := NewRegisterUseCase(newFakeUserRepo(), newJWT(), logger.NewNop())

	_, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "short",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestLogin_Succeeds(t *testing.T) {
	repo := newFakeUserRepo()
	jwtSvc := newJWT()
	reg := NewRegisterUseCase(repo, jwtSvc, logger.NewNop())
	_, err := reg.Execute(context.Background(), RegisterInput{
		Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	uc := NewLoginUseCase(repo, jwtSvc, logger.NewNop())
	out, err := uc.Execute(context.Background(), LoginInput{Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)

	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	jwtSvc := newJWT()
	reg := NewRegisterUseCase(repo, jwtSvc, logger.NewNop())
	_, err := reg.Execute(context.Background(), RegisterInput{
		Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	uc := NewLoginUseCase(repo, jwtSvc, logger.NewNop())
	_, err = uc.Execute(context.Background(), LoginInput{Email: "jane@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}

func TestLogin_UnknownEmailUnauthorized(t *testing.T) {
	uc := NewLoginUseCase(newFakeUserRepo(), newJWT(), logger.NewNop())

	_, err := uc.Execute(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}
