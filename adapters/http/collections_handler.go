package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/profile"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

// CollectionsHandler serves the four replace-collection endpoints. Each PUT
// body is the complete desired collection; records absent from it are
// deleted.
type CollectionsHandler struct {
	collectionsUseCase *profileUC.CollectionsUseCase
	logger             logger.Logger
}

func NewCollectionsHandler(uc *profileUC.CollectionsUseCase, log logger.Logger) *CollectionsHandler {
	return &CollectionsHandler{
		collectionsUseCase: uc,
		logger:             log,
	}
}

func (h *CollectionsHandler) ReplaceWorkExperiences(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var items []WorkExperienceItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for work experience update", err))
		return
	}

	err := h.collectionsUseCase.ReplaceWorkExperiences(c.Request.Context(), userID, ToWorkExperiencePatches(items))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "work experience updated"})
}

func (h *CollectionsHandler) ReplaceEducations(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var items []EducationItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education update", err))
		return
	}

	err := h.collectionsUseCase.ReplaceEducations(c.Request.Context(), userID, ToEducationPatches(items))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "education updated"})
}

func (h *CollectionsHandler) ReplaceLanguages(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var items []LanguageItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for languages update", err))
		return
	}

	err := h.collectionsUseCase.ReplaceLanguages(c.Request.Context(), userID, ToLanguagePatches(items))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "languages updated"})
}

func (h *CollectionsHandler) ReplaceCertificates(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var items []CertificateItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for certificates update", err))
		return
	}

	err := h.collectionsUseCase.ReplaceCertificates(c.Request.Context(), userID, ToCertificatePatches(items))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "certificates updated"})
}
