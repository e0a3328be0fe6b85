package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrExtractionFailed means the model replied but no single valid JSON
	// object could be extracted from the text.
	ErrExtractionFailed = errors.New("ai response extraction failed")
	// ErrTransportFailed means the text-generation call itself errored.
	ErrTransportFailed = errors.New("text generation transport failed")
)

// ExtractionError keeps the offending response text for diagnostics.
type ExtractionError struct {
	Reason string
	Raw    string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrExtractionFailed, e.Reason)
}

func (e *ExtractionError) Unwrap() error { return ErrExtractionFailed }

// Result is the parsed model payload, returned verbatim. The expected shape
// (compatibility score, suggestions, adapted resume) is a contract with the
// prompt, not enforced here.
type Result map[string]any

// ProfileSnapshot is the read-only view of a profile handed to the analyzer
// and to the document renderer. Dates are already formatted; an empty end
// date means the engagement is ongoing.
type ProfileSnapshot struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Linkedin *string `json:"linkedin"`
	Github   *string `json:"github"`

	WorkExperiences []WorkItem    `json:"work_experiences"`
	Educations      []StudyItem   `json:"educations"`
	Languages       []LangItem    `json:"languages"`
	Certificates    []CertItem    `json:"certificates"`
	Skills          SkillSnapshot `json:"skills"`
}

type WorkItem struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	CurrentJob  bool   `json:"current_job"`
}

type StudyItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type LangItem struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

type CertItem struct {
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Date        string `json:"date"`
}

type SkillSnapshot struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}
