package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resumeUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/resume"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type ResumeHandler struct {
	resumeUseCase   *resumeUC.ResumeUseCase
	generateUseCase *resumeUC.GenerateUseCase
	logger          logger.Logger
}

func NewResumeHandler(uc *resumeUC.ResumeUseCase, generateUC *resumeUC.GenerateUseCase, log logger.Logger) *ResumeHandler {
	return &ResumeHandler{
		resumeUseCase:   uc,
		generateUseCase: generateUC,
		logger:          log,
	}
}

func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.NewInvalidInput("id must be an integer", err)
	}
	return id, nil
}

func (h *ResumeHandler) List(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	resumes, err := h.resumeUseCase.ExecuteList(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToResumeDTOs(resumes))
}

func (h *ResumeHandler) Create(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for resume", err))
		return
	}

	r, err := h.resumeUseCase.ExecuteCreate(c.Request.Context(), resumeUC.CreateResumeInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		FileURL:     req.FileURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToResumeDTO(r))
}

func (h *ResumeHandler) Update(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for resume update", err))
		return
	}

	r, err := h.resumeUseCase.ExecuteUpdate(c.Request.Context(), resumeUC.UpdateResumeInput{
		UserID:      userID,
		ResumeID:    id,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		FileURL:     req.FileURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToResumeDTO(r))
}

func (h *ResumeHandler) Get(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	r, err := h.resumeUseCase.ExecuteGet(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToResumeDTO(r))
}

// Archive soft-deletes: the resume drops out of active listings but the row
// stays.
func (h *ResumeHandler) Archive(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.resumeUseCase.ExecuteArchive(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resume archived"})
}

// Generate runs the job-fit analysis and streams back the rendered document.
func (h *ResumeHandler) Generate(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req GenerateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for resume generation", err))
		return
	}

	output, err := h.generateUseCase.ExecuteGenerate(c.Request.Context(), resumeUC.GenerateInput{
		UserID:         userID,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, output.ContentType, output.Document)
}
