package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/walterBrayan/BackTalentHub/internal/application/service"
	"github.com/walterBrayan/BackTalentHub/internal/domain/analysis"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

// AnalyzeUseCase asks the text-generation service to compare a profile
// against a job posting and returns the parsed analysis. Failures keep
// their cause apart: ErrTransportFailed when the call itself errored,
// ErrExtractionFailed when the model answered but no usable JSON came back.
type AnalyzeUseCase struct {
	generator service.TextGenerator
	logger    logger.Logger
}

func NewAnalyzeUseCase(generator service.TextGenerator, log logger.Logger) *AnalyzeUseCase {
	return &AnalyzeUseCase{generator: generator, logger: log}
}

type AnalyzeInput struct {
	JobTitle       string
	JobDescription string
	Profile        analysis.ProfileSnapshot
}

func (uc *AnalyzeUseCase) ExecuteAnalyze(ctx context.Context, input AnalyzeInput) (analysis.Result, error) {
	prompt, err := BuildPrompt(input)
	if err != nil {
		return nil, fmt.Errorf("building analysis prompt: %w", err)
	}

	raw, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		uc.logger.Error("text generation call failed", err)
		return nil, fmt.Errorf("%w: %v", analysis.ErrTransportFailed, err)
	}

	result, err := ExtractJSON(raw)
	if err != nil {
		uc.logger.Warn("could not extract analysis from model response",
			zap.Int("response_len", len(raw)), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// BuildPrompt renders the instruction block followed by the job posting and
// the full profile snapshot. The snapshot is serialized as JSON so every
// stored field reaches the model; struct field order keeps the output
// stable for identical inputs.
func BuildPrompt(input AnalyzeInput) (string, error) {
	profileJSON, err := json.MarshalIndent(input.Profile, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are an expert technical recruiter. Compare the candidate profile below against the job posting.\n")
	b.WriteString("Respond with exactly one JSON object and nothing else, using this shape:\n")
	b.WriteString(`{"compatibility_score": <0-100>, "matching_skills": [...], "missing_skills": [...], "suggestions": [...], "adapted_summary": "..."}`)
	b.WriteString("\n\n## Job posting\n")
	b.WriteString("Title: ")
	b.WriteString(input.JobTitle)
	b.WriteString("\n")
	b.WriteString(input.JobDescription)
	b.WriteString("\n\n## Candidate profile\n")
	b.Write(profileJSON)
	b.WriteString("\n")
	return b.String(), nil
}
