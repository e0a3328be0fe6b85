package service

import "context"

// TextGenerator is the outbound port to the external text-generation
// service: one prompt in, one free-form response out. No streaming and no
// retry contract; transient failures surface as errors to the caller.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
