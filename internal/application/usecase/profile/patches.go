package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
)

// DateLayout is the only accepted textual date format on collection writes.
const DateLayout = "2006-01-02"

func requiredField(name string, v *string) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%s is required", name)
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return "", fmt.Errorf("%s must not be blank", name)
	}
	return s, nil
}

func parseRequiredDate(name string, v *string) (time.Time, error) {
	s, err := requiredField(name, v)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date format, use YYYY-MM-DD", name)
	}
	return t, nil
}

// parseOptionalDate treats nil and blank the same way: no date. For end
// dates that means the engagement is ongoing.
func parseOptionalDate(name string, v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(*v))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date format, use YYYY-MM-DD", name)
	}
	return &t, nil
}

type WorkExperiencePatch struct {
	ID          *int64
	Company     *string
	Position    *string
	StartDate   *string
	EndDate     *string
	Description *string
	CurrentJob  *bool

	startDate time.Time
	endDate   *time.Time
}

func (p *WorkExperiencePatch) SubmittedID() (int64, bool) {
	if p.ID == nil {
		return 0, false
	}
	return *p.ID, true
}

func (p *WorkExperiencePatch) Validate() error {
	if _, err := requiredField("company", p.Company); err != nil {
		return err
	}
	if _, err := requiredField("position", p.Position); err != nil {
		return err
	}
	start, err := parseRequiredDate("startDate", p.StartDate)
	if err != nil {
		return err
	}
	end, err := parseOptionalDate("endDate", p.EndDate)
	if err != nil {
		return err
	}
	p.startDate = start
	p.endDate = end
	return nil
}

func (p *WorkExperiencePatch) NewRecord(profileID uuid.UUID) profile.WorkExperience {
	return profile.WorkExperience{ProfileID: profileID}
}

func (p *WorkExperiencePatch) Apply(r *profile.WorkExperience) {
	r.Company = strings.TrimSpace(*p.Company)
	r.Position = strings.TrimSpace(*p.Position)
	r.StartDate = p.startDate
	if p.EndDate != nil {
		r.EndDate = p.endDate
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.CurrentJob != nil {
		r.CurrentJob = *p.CurrentJob
	}
}

type EducationPatch struct {
	ID          *int64
	Institution *string
	Degree      *string
	StartDate   *string
	EndDate     *string
	Description *string

	startDate time.Time
	endDate   *time.Time
}

func (p *EducationPatch) SubmittedID() (int64, bool) {
	if p.ID == nil {
		return 0, false
	}
	return *p.ID, true
}

func (p *EducationPatch) Validate() error {
	if _, err := requiredField("institution", p.Institution); err != nil {
		return err
	}
	if _, err := requiredField("degree", p.Degree); err != nil {
		return err
	}
	start, err := parseRequiredDate("startDate", p.StartDate)
	if err != nil {
		return err
	}
	end, err := parseOptionalDate("endDate", p.EndDate)
	if err != nil {
		return err
	}
	p.startDate = start
	p.endDate = end
	return nil
}

func (p *EducationPatch) NewRecord(profileID uuid.UUID) profile.Education {
	return profile.Education{ProfileID: profileID}
}

func (p *EducationPatch) Apply(r *profile.Education) {
	r.Institution = strings.TrimSpace(*p.Institution)
	r.Degree = strings.TrimSpace(*p.Degree)
	r.StartDate = p.startDate
	if p.EndDate != nil {
		r.EndDate = p.endDate
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
}

type LanguagePatch struct {
	ID       *int64
	Language *string
	Level    *string
}

func (p *LanguagePatch) SubmittedID() (int64, bool) {
	if p.ID == nil {
		return 0, false
	}
	return *p.ID, true
}

func (p *LanguagePatch) Validate() error {
	if _, err := requiredField("language", p.Language); err != nil {
		return err
	}
	if _, err := requiredField("level", p.Level); err != nil {
		return err
	}
	return nil
}

func (p *LanguagePatch) NewRecord(profileID uuid.UUID) profile.Language {
	return profile.Language{ProfileID: profileID}
}

func (p *LanguagePatch) Apply(r *profile.Language) {
	r.Name = strings.TrimSpace(*p.Language)
	r.Level = strings.TrimSpace(*p.Level)
}

type CertificatePatch struct {
	ID          *int64
	Name        *string
	Institution *string
	Date        *string
	URL         *string

	date *time.Time
}

func (p *CertificatePatch) SubmittedID() (int64, bool) {
	if p.ID == nil {
		return 0, false
	}
	return *p.ID, true
}

func (p *CertificatePatch) Validate() error {
	if _, err := requiredField("name", p.Name); err != nil {
		return err
	}
	if _, err := requiredField("institution", p.Institution); err != nil {
		return err
	}
	date, err := parseOptionalDate("date", p.Date)
	if err != nil {
		return err
	}
	p.date = date
	return nil
}

func (p *CertificatePatch) NewRecord(profileID uuid.UUID) profile.Certificate {
	return profile.Certificate{ProfileID: profileID}
}

func (p *CertificatePatch) Apply(r *profile.Certificate) {
	r.Name = strings.TrimSpace(*p.Name)
	r.Institution = strings.TrimSpace(*p.Institution)
	if p.Date != nil {
		r.Date = p.date
	}
	if p.URL != nil {
		r.URL = p.URL
	}
}
