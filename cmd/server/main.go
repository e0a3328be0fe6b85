package main

import (
	"context"
	"log"

	"github.com/walterBrayan/BackTalentHub/adapters/event"
	httpAdapter "github.com/walterBrayan/BackTalentHub/adapters/http"
	"github.com/walterBrayan/BackTalentHub/adapters/llm"
	"github.com/walterBrayan/BackTalentHub/adapters/persistence"
	"github.com/walterBrayan/BackTalentHub/adapters/render"
	analysisUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/analysis"
	appUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/application"
	authUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/auth"
	profileUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/profile"
	resumeUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/resume"
	skillUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/skill"
	"github.com/walterBrayan/BackTalentHub/internal/config"
	"github.com/walterBrayan/BackTalentHub/pkg/auth"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
	"github.com/walterBrayan/BackTalentHub/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting TalentHub API server...")

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg.Jaeger.OTLPEndpoint, "talenthub-api", appLogger)
		if err != nil {
			appLogger.Fatal("cannot init tracing", err)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				appLogger.Error("failed to shut down tracer provider", err)
			}
		}()
	}

	// Infrastructure
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaProducer, err := event.NewKafkaProducer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaProducer.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool)
	txManager := persistence.NewTxManager(dbPool)
	skillCategoryRepo := persistence.NewPostgresSkillCategoryRepo(dbPool)
	skillCatalogRepo := persistence.NewCachedSkillCatalogRepo(
		persistence.NewPostgresSkillCatalogRepo(dbPool), redisClient, appLogger,
	)
	resumeRepo := persistence.NewPostgresResumeRepo(dbPool)
	applicationRepo := persistence.NewPostgresApplicationRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	textGenerator, err := llm.NewOpenAIAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init text generation adapter", err)
	}
	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		appLogger.Fatal("cannot init resume renderer", err)
	}

	// Use cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, userRepo, appLogger)
	collectionsUseCase := profileUC.NewCollectionsUseCase(profileRepo, txManager, kafkaProducer, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(profileRepo, skillCategoryRepo, skillCatalogRepo, txManager, kafkaProducer, appLogger)
	analyzeUseCase := analysisUC.NewAnalyzeUseCase(textGenerator, appLogger)
	resumeUseCase := resumeUC.NewResumeUseCase(resumeRepo, appLogger)
	generateUseCase := resumeUC.NewGenerateUseCase(userRepo, profileRepo, skillCategoryRepo, analyzeUseCase, renderer, appLogger)
	applicationUseCase := appUC.NewApplicationUseCase(applicationRepo, appLogger)

	// HTTP
	handlers := httpAdapter.Handlers{
		Auth:         httpAdapter.NewAuthHandler(registerUseCase, loginUseCase),
		Profile:      httpAdapter.NewProfileHandler(profileUseCase, skillUseCase, appLogger),
		Collections:  httpAdapter.NewCollectionsHandler(collectionsUseCase, appLogger),
		Skills:       httpAdapter.NewSkillHandler(skillUseCase, appLogger),
		Resumes:      httpAdapter.NewResumeHandler(resumeUseCase, generateUseCase, appLogger),
		Applications: httpAdapter.NewApplicationHandler(applicationUseCase, appLogger),
	}
	router := httpAdapter.NewRouter(handlers, jwtSvc, appLogger)

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
