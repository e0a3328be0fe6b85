package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walterBrayan/BackTalentHub/internal/domain/analysis"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func snapshotFixture() analysis.ProfileSnapshot {
	phone := "+34 600 000 000"
	linkedin := "https://linkedin.com/in/jane"
	return analysis.ProfileSnapshot{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Phone:    &phone,
		Linkedin: &linkedin,
		WorkExperiences: []analysis.WorkItem{
			{Company: "Acme", Position: "Backend Dev", StartDate: "2020-01-01", CurrentJob: true},
		},
		Educations: []analysis.StudyItem{
			{Institution: "MIT", Degree: "CS", StartDate: "2014-09-01", EndDate: "2018-06-30"},
		},
		Languages:    []analysis.LangItem{{Language: "English", Level: "C1"}},
		Certificates: []analysis.CertItem{{Name: "CKA", Institution: "CNCF", Date: "2022-05-01"}},
		Skills:       analysis.SkillSnapshot{Technical: []string{"go", "postgres"}, Soft: []string{"mentoring"}},
	}
}

func TestExecuteAnalyze_ParsesModelResponse(t *testing.T) {
	gen := &stubGenerator{response: `Here you go: {"compatibility_score": 92, "suggestions": []}`}
	uc := NewAnalyzeUseCase(gen, logger.NewNop())

	result, err := uc.ExecuteAnalyze(context.Background(), AnalyzeInput{
		JobTitle:       "Senior Go Engineer",
		JobDescription: "Build payment APIs.",
		Profile:        snapshotFixture(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 92, result["compatibility_score"])
}

func TestExecuteAnalyze_PromptCarriesFullProfile(t *testing.T) {
	gen := &stubGenerator{response: `{"compatibility_score": 1}`}
	uc := NewAnalyzeUseCase(gen, logger.NewNop())

	_, err := uc.ExecuteAnalyze(context.Background(), AnalyzeInput{
		JobTitle:       "Senior Go Engineer",
		JobDescription: "Build payment APIs.",
		Profile:        snapshotFixture(),
	})
	require.NoError(t, err)

	for _, want := range []string{
		"Senior Go Engineer", "Build payment APIs.",
		"Jane Roe", "jane@example.com", "+34 600 000 000",
		"Acme", "Backend Dev", "MIT", "English", "CKA",
		"postgres", "mentoring",
	} {
		assert.True(t, strings.Contains(gen.prompt, want), "prompt missing %q", want)
	}
}

func TestExecuteAnalyze_SamePromptForSameInput(t *testing.T) {
	gen := &stubGenerator{response: `{"ok": true}`}
	uc := NewAnalyzeUseCase(gen, logger.NewNop())
	input := AnalyzeInput{JobTitle: "Dev", JobDescription: "Stuff", Profile: snapshotFixture()}

	_, err := uc.ExecuteAnalyze(context.Background(), input)
	require.NoError(t, err)
	first := gen.prompt

	_, err = uc.ExecuteAnalyze(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, first, gen.prompt)
}

func TestExecuteAnalyze_TransportFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	uc := NewAnalyzeUseCase(gen, logger.NewNop())

	_, err := uc.ExecuteAnalyze(context.Background(), AnalyzeInput{Profile: snapshotFixture()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, analysis.ErrTransportFailed))
	assert.False(t, errors.Is(err, analysis.ErrExtractionFailed))
}

func TestExecuteAnalyze_ExtractionFailure(t *testing.T) {
	gen := &stubGenerator{response: `blah {"a":1} blah {"b":2}`}
	uc := NewAnalyzeUseCase(gen, logger.NewNop())

	_, err := uc.ExecuteAnalyze(context.Background(), AnalyzeInput{Profile: snapshotFixture()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, analysis.ErrExtractionFailed))
	assert.False(t, errors.Is(err, analysis.ErrTransportFailed))
}
