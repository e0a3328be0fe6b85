package service

import (
	"context"

	"github.com/walterBrayan/BackTalentHub/internal/domain/analysis"
)

// ResumeDocument is everything the renderer needs to lay out a tailored
// resume. Analysis is passed through verbatim from the extraction step.
type ResumeDocument struct {
	JobTitle string
	Analysis analysis.Result
	Profile  analysis.ProfileSnapshot
}

// DocumentRenderer turns a validated analysis result plus profile data into
// a downloadable document.
type DocumentRenderer interface {
	Render(ctx context.Context, doc ResumeDocument) ([]byte, error)
	ContentType() string
}
