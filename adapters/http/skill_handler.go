package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/skill"
	"github.com/walterBrayan/BackTalentHub/internal/domain/skill"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{
		skillUseCase: uc,
		logger:       log,
	}
}

func (h *SkillHandler) AddSkills(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req AddSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skills", err))
		return
	}

	err := h.skillUseCase.ExecuteAddSkills(c.Request.Context(), skillUC.AddSkillsInput{
		UserID:    userID,
		Technical: req.Technical,
		Soft:      req.Soft,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "skills added"})
}

func (h *SkillHandler) UpdateSkills(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skills update", err))
		return
	}

	skillType, err := skill.ParseType(req.Type)
	if err != nil {
		c.Error(apperror.NewInvalidInput("unknown skill type", err))
		return
	}

	err = h.skillUseCase.ExecuteUpdateSkills(c.Request.Context(), skillUC.UpdateSkillsInput{
		UserID: userID,
		Type:   skillType,
		Skills: req.Skills,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "skills updated"})
}

func (h *SkillHandler) GetSkills(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.skillUseCase.ExecuteGetUserSkills(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SkillsDTO{Technical: output.Technical, Soft: output.Soft})
}

func (h *SkillHandler) SearchSkills(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	skillType, err := skill.ParseType(c.DefaultQuery("type", "tech"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("unknown skill type", err))
		return
	}

	results, err := h.skillUseCase.ExecuteSearchSkills(c.Request.Context(), skillUC.SearchSkillsInput{
		UserID:   userID,
		Fragment: c.Query("q"),
		Type:     skillType,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToStandardSkillDTOs(results))
}
