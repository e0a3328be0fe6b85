package resume

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/walterBrayan/BackTalentHub/internal/application/service"
	analysisuc "github.com/walterBrayan/BackTalentHub/internal/application/usecase/analysis"
	"github.com/walterBrayan/BackTalentHub/internal/domain/analysis"
	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
	"github.com/walterBrayan/BackTalentHub/internal/domain/skill"
	"github.com/walterBrayan/BackTalentHub/internal/domain/user"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

// Analyzer is the job-fit analysis step of resume generation.
type Analyzer interface {
	ExecuteAnalyze(ctx context.Context, input analysisuc.AnalyzeInput) (analysis.Result, error)
}

// GenerateUseCase builds a tailored resume document for one job posting.
// All profile reads happen before the model call and nothing is written, so
// no transaction is held open while waiting on the external service.
type GenerateUseCase struct {
	userRepo     user.Repository
	profileRepo  profile.Repository
	categoryRepo skill.CategoryRepository
	analyzer     Analyzer
	renderer     service.DocumentRenderer
	logger       logger.Logger
}

func NewGenerateUseCase(
	users user.Repository,
	profiles profile.Repository,
	categories skill.CategoryRepository,
	analyzer Analyzer,
	renderer service.DocumentRenderer,
	log logger.Logger,
) *GenerateUseCase {
	return &GenerateUseCase{
		userRepo:     users,
		profileRepo:  profiles,
		categoryRepo: categories,
		analyzer:     analyzer,
		renderer:     renderer,
		logger:       log,
	}
}

type GenerateInput struct {
	UserID         uuid.UUID
	JobTitle       string
	JobDescription string
}

type GenerateOutput struct {
	Document    []byte
	ContentType string
	Analysis    analysis.Result
}

func (uc *GenerateUseCase) ExecuteGenerate(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	if strings.TrimSpace(input.JobTitle) == "" || strings.TrimSpace(input.JobDescription) == "" {
		return nil, apperror.NewInvalidInput("job title and description are required", nil)
	}

	snapshot, err := uc.buildSnapshot(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	result, err := uc.analyzer.ExecuteAnalyze(ctx, analysisuc.AnalyzeInput{
		JobTitle:       input.JobTitle,
		JobDescription: input.JobDescription,
		Profile:        *snapshot,
	})
	if err != nil {
		if errors.Is(err, analysis.ErrExtractionFailed) || errors.Is(err, analysis.ErrTransportFailed) {
			return nil, apperror.NewUpstream("analysis service did not return a usable result", err)
		}
		return nil, err
	}

	doc, err := uc.renderer.Render(ctx, service.ResumeDocument{
		JobTitle: input.JobTitle,
		Analysis: result,
		Profile:  *snapshot,
	})
	if err != nil {
		uc.logger.Error("failed to render resume document", err, zap.String("user_id", input.UserID.String()))
		return nil, apperror.NewInternal("failed to render resume document", err)
	}

	return &GenerateOutput{
		Document:    doc,
		ContentType: uc.renderer.ContentType(),
		Analysis:    result,
	}, nil
}

// buildSnapshot loads everything the analyzer and renderer see about the
// user. Dates are formatted here so downstream steps deal in plain strings.
func (uc *GenerateUseCase) buildSnapshot(ctx context.Context, userID uuid.UUID) (*analysis.ProfileSnapshot, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	agg, err := uc.profileRepo.GetAggregate(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := &analysis.ProfileSnapshot{
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Address:  u.Address,
		Linkedin: agg.Profile.LinkedinURL,
		Github:   agg.Profile.GithubURL,

		WorkExperiences: make([]analysis.WorkItem, 0, len(agg.WorkExperiences)),
		Educations:      make([]analysis.StudyItem, 0, len(agg.Educations)),
		Languages:       make([]analysis.LangItem, 0, len(agg.Languages)),
		Certificates:    make([]analysis.CertItem, 0, len(agg.Certificates)),
	}

	for _, w := range agg.WorkExperiences {
		snap.WorkExperiences = append(snap.WorkExperiences, analysis.WorkItem{
			Company:     w.Company,
			Position:    w.Position,
			StartDate:   formatDate(&w.StartDate),
			EndDate:     formatDate(w.EndDate),
			Description: w.Description,
			CurrentJob:  w.CurrentJob,
		})
	}
	for _, e := range agg.Educations {
		snap.Educations = append(snap.Educations, analysis.StudyItem{
			Institution: e.Institution,
			Degree:      e.Degree,
			StartDate:   formatDate(&e.StartDate),
			EndDate:     formatDate(e.EndDate),
			Description: e.Description,
		})
	}
	for _, l := range agg.Languages {
		snap.Languages = append(snap.Languages, analysis.LangItem{Language: l.Name, Level: l.Level})
	}
	for _, c := range agg.Certificates {
		snap.Certificates = append(snap.Certificates, analysis.CertItem{
			Name:        c.Name,
			Institution: c.Institution,
			Date:        formatDate(c.Date),
		})
	}

	for _, t := range skill.Types() {
		cat, err := uc.categoryRepo.GetByProfileAndType(ctx, agg.Profile.ID, t)
		if err != nil {
			return nil, err
		}
		switch t {
		case skill.TypeTechnical:
			snap.Skills.Technical = cat.Skills
		case skill.TypeSoft:
			snap.Skills.Soft = cat.Skills
		}
	}
	if snap.Skills.Technical == nil {
		snap.Skills.Technical = []string{}
	}
	if snap.Skills.Soft == nil {
		snap.Skills.Soft = []string{}
	}
	return snap, nil
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
