package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appUC "github.com/walterBrayan/BackTalentHub/internal/application/usecase/application"
	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type ApplicationHandler struct {
	applicationUseCase *appUC.ApplicationUseCase
	logger             logger.Logger
}

func NewApplicationHandler(uc *appUC.ApplicationUseCase, log logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUseCase: uc,
		logger:             log,
	}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	apps, err := h.applicationUseCase.ExecuteList(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToApplicationDTOs(apps))
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for application", err))
		return
	}

	a, err := h.applicationUseCase.ExecuteCreate(c.Request.Context(), appUC.CreateApplicationInput{
		UserID:      userID,
		Position:    req.Position,
		Company:     req.Company,
		URL:         req.URL,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToApplicationDTO(a))
}

func (h *ApplicationHandler) Get(c *gin.Context) {
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

	a, err := h.applicationUseCase.ExecuteGet(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToApplicationDTO(a))
}

func (h *ApplicationHandler) Update(c *gin.Context) {
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

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for application update", err))
		return
	}

	a, err := h.applicationUseCase.ExecuteUpdate(c.Request.Context(), appUC.UpdateApplicationInput{
		UserID:        userID,
		ApplicationID: id,
		Position:      req.Position,
		Company:       req.Company,
		URL:           req.URL,
		Description:   req.Description,
		Status:        req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToApplicationDTO(a))
}
