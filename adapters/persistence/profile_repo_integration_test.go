package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
	"github.com/walterBrayan/BackTalentHub/internal/domain/skill"
	"github.com/walterBrayan/BackTalentHub/internal/domain/user"
)

type ProfileRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	profileRepo profile.Repository
	userRepo    user.Repository
	txManager   profile.TxManager
	testUser    *user.User
	testProfile *profile.Profile
}

func (s *ProfileRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.profileRepo = NewPostgresProfileRepo(pool)
	s.userRepo = NewPostgresUserRepo(pool)
	s.txManager = NewTxManager(pool)

	now := time.Now().UTC()
	s.testUser = &user.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "testuser@example.com",
		PasswordHash: "hashedpassword",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Save(ctx, s.testUser); err != nil {
		s.T().Fatalf("Failed to seed user: %s", err)
	}

	s.testProfile = &profile.Profile{
		ID:        uuid.New(),
		UserID:    s.testUser.ID,
		UpdatedAt: now,
	}
	if err := s.profileRepo.Upsert(ctx, s.testProfile); err != nil {
		s.T().Fatalf("Failed to seed profile: %s", err)
	}
}

func (s *ProfileRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestProfileRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ProfileRepoIntegrationTestSuite))
}

func (s *ProfileRepoIntegrationTestSuite) Test_WorkExperiences_InsertUpdateDelete() {
	ctx := context.Background()

	uow, err := s.txManager.Begin(ctx)
	s.Require().NoError(err)
	store := uow.WorkExperiences()

	rec := profile.WorkExperience{
		ProfileID: s.testProfile.ID,
		Company:   "Acme",
		Position:  "Dev",
		StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(store.Insert(ctx, &rec))
	s.NotZero(rec.ID)

	rec.Position = "Sr Dev"
	s.Require().NoError(store.Update(ctx, &rec))
	s.Require().NoError(uow.Commit(ctx))

	uow2, err := s.txManager.Begin(ctx)
	s.Require().NoError(err)
	defer uow2.Rollback(ctx)

	records, err := uow2.WorkExperiences().ListByProfile(ctx, s.testProfile.ID)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("Sr Dev", records[0].Position)

	s.Require().NoError(uow2.WorkExperiences().Delete(ctx, rec.ID))
	s.Require().NoError(uow2.Commit(ctx))
}

func (s *ProfileRepoIntegrationTestSuite) Test_Rollback_DiscardsInserts() {
	ctx := context.Background()

	uow, err := s.txManager.Begin(ctx)
	s.Require().NoError(err)

	rec := profile.Language{ProfileID: s.testProfile.ID, Name: "Spanish", Level: "B2"}
	s.Require().NoError(uow.Languages().Insert(ctx, &rec))
	s.Require().NoError(uow.Rollback(ctx))

	agg, err := s.profileRepo.GetAggregate(ctx, s.testUser.ID)
	s.Require().NoError(err)
	s.Empty(agg.Languages)
}

func (s *ProfileRepoIntegrationTestSuite) Test_GetAggregate_LoadsChildren() {
	ctx := context.Background()

	uow, err := s.txManager.Begin(ctx)
	s.Require().NoError(err)

	edu := profile.Education{
		ProfileID:   s.testProfile.ID,
		Institution: "MIT",
		Degree:      "CS",
		StartDate:   time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(uow.Educations().Insert(ctx, &edu))

	cert := profile.Certificate{ProfileID: s.testProfile.ID, Name: "CKA", Institution: "CNCF"}
	s.Require().NoError(uow.Certificates().Insert(ctx, &cert))
	s.Require().NoError(uow.Commit(ctx))

	agg, err := s.profileRepo.GetAggregate(ctx, s.testUser.ID)
	s.Require().NoError(err)
	s.Len(agg.Educations, 1)
	s.Len(agg.Certificates, 1)
	s.Equal("MIT", agg.Educations[0].Institution)
}

func (s *ProfileRepoIntegrationTestSuite) Test_SkillCategories_RollbackDiscardsUpsert() {
	ctx := context.Background()

	uow, err := s.txManager.Begin(ctx)
	s.Require().NoError(err)

	cat, err := uow.SkillCategories().GetByProfileAndType(ctx, s.testProfile.ID, skill.TypeSoft)
	s.Require().NoError(err)
	cat.Skills = []string{"communication"}
	s.Require().NoError(uow.SkillCategories().Upsert(ctx, cat))
	s.Require().NoError(uow.Rollback(ctx))

	after, err := NewPostgresSkillCategoryRepo(s.dbPool).GetByProfileAndType(ctx, s.testProfile.ID, skill.TypeSoft)
	s.Require().NoError(err)
	s.Empty(after.Skills)
	s.Zero(after.ID)
}

func (s *ProfileRepoIntegrationTestSuite) Test_SkillCategories_UpsertAndSearch() {
	ctx := context.Background()

	catRepo := NewPostgresSkillCategoryRepo(s.dbPool)

	cat, err := catRepo.GetByProfileAndType(ctx, s.testProfile.ID, skill.TypeTechnical)
	s.Require().NoError(err)
	s.Empty(cat.Skills)

	cat.Skills = []string{"docker", "go"}
	s.Require().NoError(catRepo.Upsert(ctx, cat))
	s.NotZero(cat.ID)

	again, err := catRepo.GetByProfileAndType(ctx, s.testProfile.ID, skill.TypeTechnical)
	s.Require().NoError(err)
	s.Equal([]string{"docker", "go"}, again.Skills)

	// Same pair upserts into the same row.
	again.Skills = []string{"go"}
	s.Require().NoError(catRepo.Upsert(ctx, again))
	s.Equal(cat.ID, again.ID)
}
