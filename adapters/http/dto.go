package http

import (
	"time"

	profileUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/profile"
	"github.com/walterBrayan/BackTalentHub/internal/domain/application"
	"github.com/walterBrayan/BackTalentHub/internal/domain/profile"
	"github.com/walterBrayan/BackTalentHub/internal/domain/resume"
	"github.com/walterBrayan/BackTalentHub/internal/domain/skill"
	"github.com/walterBrayan/BackTalentHub/internal/domain/user"
)

// Wire field names stay compatible with the existing frontend, which sends
// Spanish keys (empresa, cargo, idioma, ...). The translation to domain
// names happens only here.

func fmtDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(profileUC.DateLayout)
	return &s
}

// Auth DTOs

type RegisterRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

type UserDTO struct {
	ID      string  `json:"id"`
	Name    string  `json:"nombre"`
	Email   string  `json:"email"`
	Phone   *string `json:"telefono"`
	Address *string `json:"direccion"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:      u.ID.String(),
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
	}
}

// Profile DTOs

type UpdateProfileRequest struct {
	Name        *string `json:"nombre"`
	Email       *string `json:"email"`
	Phone       *string `json:"telefono"`
	Address     *string `json:"direccion"`
	Headline    *string `json:"titular"`
	LinkedinURL *string `json:"linkedin"`
	GithubURL   *string `json:"github"`
}

type ProfileDTO struct {
	Headline    *string   `json:"titular"`
	LinkedinURL *string   `json:"linkedin"`
	GithubURL   *string   `json:"github"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		Headline:    p.Headline,
		LinkedinURL: p.LinkedinURL,
		GithubURL:   p.GithubURL,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Collection items. Each request item doubles as a patch source: pointer
// fields distinguish absent keys from present-but-empty ones.

type WorkExperienceItem struct {
	ID          *int64  `json:"id"`
	Company     *string `json:"empresa"`
	Position    *string `json:"cargo"`
	StartDate   *string `json:"fechaInicio"`
	EndDate     *string `json:"fechaFin"`
	Description *string `json:"descripcion"`
	CurrentJob  *bool   `json:"trabajoActual"`
}

func (i WorkExperienceItem) toPatch() *profileUC.WorkExperiencePatch {
	return &profileUC.WorkExperiencePatch{
		ID:          i.ID,
		Company:     i.Company,
		Position:    i.Position,
		StartDate:   i.StartDate,
		EndDate:     i.EndDate,
		Description: i.Description,
		CurrentJob:  i.CurrentJob,
	}
}

func ToWorkExperiencePatches(items []WorkExperienceItem) []*profileUC.WorkExperiencePatch {
	patches := make([]*profileUC.WorkExperiencePatch, len(items))
	for i, item := range items {
		patches[i] = item.toPatch()
	}
	return patches
}

type WorkExperienceDTO struct {
	ID          int64   `json:"id"`
	Company     string  `json:"empresa"`
	Position    string  `json:"cargo"`
	StartDate   string  `json:"fechaInicio"`
	EndDate     *string `json:"fechaFin"`
	Description string  `json:"descripcion"`
	CurrentJob  bool    `json:"trabajoActual"`
}

func ToWorkExperienceDTOs(records []profile.WorkExperience) []WorkExperienceDTO {
	dtos := make([]WorkExperienceDTO, len(records))
	for i, r := range records {
		dtos[i] = WorkExperienceDTO{
			ID:          r.ID,
			Company:     r.Company,
			Position:    r.Position,
			StartDate:   r.StartDate.Format(profileUC.DateLayout),
			EndDate:     fmtDate(r.EndDate),
			Description: r.Description,
			CurrentJob:  r.CurrentJob,
		}
	}
	return dtos
}

type EducationItem struct {
	ID          *int64  `json:"id"`
	Institution *string `json:"institucion"`
	Degree      *string `json:"titulo"`
	StartDate   *string `json:"fecha_inicio"`
	EndDate     *string `json:"fecha_fin"`
	Description *string `json:"descripcion"`
}

func ToEducationPatches(items []EducationItem) []*profileUC.EducationPatch {
	patches := make([]*profileUC.EducationPatch, len(items))
	for i, item := range items {
		patches[i] = &profileUC.EducationPatch{
			ID:          item.ID,
			Institution: item.Institution,
			Degree:      item.Degree,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
			Description: item.Description,
		}
	}
	return patches
}

type EducationDTO struct {
	ID          int64   `json:"id"`
	Institution string  `json:"institucion"`
	Degree      string  `json:"titulo"`
	StartDate   string  `json:"fecha_inicio"`
	EndDate     *string `json:"fecha_fin"`
	Description string  `json:"descripcion"`
}

func ToEducationDTOs(records []profile.Education) []EducationDTO {
	dtos := make([]EducationDTO, len(records))
	for i, r := range records {
		dtos[i] = EducationDTO{
			ID:          r.ID,
			Institution: r.Institution,
			Degree:      r.Degree,
			StartDate:   r.StartDate.Format(profileUC.DateLayout),
			EndDate:     fmtDate(r.EndDate),
			Description: r.Description,
		}
	}
	return dtos
}

type LanguageItem struct {
	ID       *int64  `json:"id"`
	Language *string `json:"idioma"`
	Level    *string `json:"nivel"`
}

func ToLanguagePatches(items []LanguageItem) []*profileUC.LanguagePatch {
	patches := make([]*profileUC.LanguagePatch, len(items))
	for i, item := range items {
		patches[i] = &profileUC.LanguagePatch{
			ID:       item.ID,
			Language: item.Language,
			Level:    item.Level,
		}
	}
	return patches
}

type LanguageDTO struct {
	ID       int64  `json:"id"`
	Language string `json:"idioma"`
	Level    string `json:"nivel"`
}

func ToLanguageDTOs(records []profile.Language) []LanguageDTO {
	dtos := make([]LanguageDTO, len(records))
	for i, r := range records {
		dtos[i] = LanguageDTO{ID: r.ID, Language: r.Name, Level: r.Level}
	}
	return dtos
}

type CertificateItem struct {
	ID          *int64  `json:"id"`
	Name        *string `json:"nombre"`
	Institution *string `json:"institucion"`
	Date        *string `json:"fecha"`
	URL         *string `json:"url"`
}

func ToCertificatePatches(items []CertificateItem) []*profileUC.CertificatePatch {
	patches := make([]*profileUC.CertificatePatch, len(items))
	for i, item := range items {
		patches[i] = &profileUC.CertificatePatch{
			ID:          item.ID,
			Name:        item.Name,
			Institution: item.Institution,
			Date:        item.Date,
			URL:         item.URL,
		}
	}
	return patches
}

type CertificateDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Institution string  `json:"institucion"`
	Date        *string `json:"fecha"`
	URL         *string `json:"url"`
}

func ToCertificateDTOs(records []profile.Certificate) []CertificateDTO {
	dtos := make([]CertificateDTO, len(records))
	for i, r := range records {
		dtos[i] = CertificateDTO{
			ID:          r.ID,
			Name:        r.Name,
			Institution: r.Institution,
			Date:        fmtDate(r.Date),
			URL:         r.URL,
		}
	}
	return dtos
}

// Skill DTOs

type AddSkillsRequest struct {
	Technical []string `json:"tecnicas"`
	Soft      []string `json:"blandas"`
}

type UpdateSkillsRequest struct {
	Type   string   `json:"tipo" binding:"required"`
	Skills []string `json:"skills"`
}

type SkillsDTO struct {
	Technical []string `json:"tecnicas"`
	Soft      []string `json:"blandas"`
}

type StandardSkillDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func ToStandardSkillDTOs(skills []skill.StandardSkill) []StandardSkillDTO {
	dtos := make([]StandardSkillDTO, len(skills))
	for i, s := range skills {
		dtos[i] = StandardSkillDTO{Value: s.NormalizedName, Label: s.DisplayName}
	}
	return dtos
}

// Full aggregate returned by GET /api/user/profile.

type FullProfileDTO struct {
	User            UserDTO             `json:"user"`
	Profile         ProfileDTO          `json:"perfil"`
	WorkExperiences []WorkExperienceDTO `json:"experiencias"`
	Educations      []EducationDTO      `json:"estudios"`
	Languages       []LanguageDTO       `json:"idiomas"`
	Certificates    []CertificateDTO    `json:"certificados"`
	Skills          SkillsDTO           `json:"habilidades"`
}

// Resume DTOs

type CreateResumeRequest struct {
	Title       string  `json:"titulo" binding:"required"`
	Description string  `json:"descripcion"`
	Category    string  `json:"categoria"`
	FileURL     *string `json:"archivo_url"`
}

type UpdateResumeRequest struct {
	Title       *string `json:"titulo"`
	Description *string `json:"descripcion"`
	Category    *string `json:"categoria"`
	Status      *string `json:"estado"`
	FileURL     *string `json:"archivo_url"`
}

type ResumeDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descripcion"`
	Category    string    `json:"categoria"`
	Status      string    `json:"estado"`
	FileURL     *string   `json:"archivo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToResumeDTO(r *resume.Resume) ResumeDTO {
	return ResumeDTO{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
		FileURL:     r.FileURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func ToResumeDTOs(resumes []*resume.Resume) []ResumeDTO {
	dtos := make([]ResumeDTO, len(resumes))
	for i, r := range resumes {
		dtos[i] = ToResumeDTO(r)
	}
	return dtos
}

type GenerateResumeRequest struct {
	JobTitle       string `json:"puesto" binding:"required"`
	JobDescription string `json:"descripcion" binding:"required"`
}

// Job application DTOs

type CreateApplicationRequest struct {
	Position    string  `json:"puesto" binding:"required"`
	Company     string  `json:"empresa" binding:"required"`
	URL         *string `json:"url"`
	Description string  `json:"descripcion"`
	Status      string  `json:"estado"`
}

type UpdateApplicationRequest struct {
	Position    *string `json:"puesto"`
	Company     *string `json:"empresa"`
	URL         *string `json:"url"`
	Description *string `json:"descripcion"`
	Status      *string `json:"estado"`
}

type ApplicationDTO struct {
	ID          int64     `json:"id"`
	Position    string    `json:"puesto"`
	Company     string    `json:"empresa"`
	URL         *string   `json:"url"`
	Description string    `json:"descripcion"`
	Status      string    `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToApplicationDTO(a *application.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:          a.ID,
		Position:    a.Position,
		Company:     a.Company,
		URL:         a.URL,
		Description: a.Description,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func ToApplicationDTOs(apps []*application.Application) []ApplicationDTO {
	dtos := make([]ApplicationDTO, len(apps))
	for i, a := range apps {
		dtos[i] = ToApplicationDTO(a)
	}
	return dtos
}
