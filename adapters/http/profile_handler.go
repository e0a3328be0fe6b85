package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/profile"
	skillUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/skill"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	skillUseCase   *skillUC.SkillUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, skills *skillUC.SkillUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		skillUseCase:   skills,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), profileUC.UpdateProfileInput{
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Headline:    req.Headline,
		LinkedinURL: req.LinkedinURL,
		GithubURL:   req.GithubURL,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

// GetFullProfile returns the complete aggregate the frontend renders on the
// profile page: user fields, profile header, every child collection and both
// skill sets.
func (h *ProfileHandler) GetFullProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.profileUseCase.ExecuteGetAggregate(c.Request.Context(), profileUC.GetAggregateInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	skills, err := h.skillUseCase.ExecuteGetUserSkills(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, FullProfileDTO{
		User:            ToUserDTO(output.User),
		Profile:         ToProfileDTO(&output.Aggregate.Profile),
		WorkExperiences: ToWorkExperienceDTOs(output.Aggregate.WorkExperiences),
		Educations:      ToEducationDTOs(output.Aggregate.Educations),
		Languages:       ToLanguageDTOs(output.Aggregate.Languages),
		Certificates:    ToCertificateDTOs(output.Aggregate.Certificates),
		Skills:          SkillsDTO{Technical: skills.Technical, Soft: skills.Soft},
	})
}
