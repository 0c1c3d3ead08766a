package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/app/models/dto"
	"github.com/sorawit/coursereg/internal/app/services"
	"github.com/sorawit/coursereg/internal/middleware"
)

// RegistrationController handles admin registration management
type RegistrationController struct {
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{registrationService: registrationService}
}

// GetRegistrations lists registrations, optionally filtered by course
func (c *RegistrationController) GetRegistrations(ctx *gin.Context) {
	var (
		regs []models.Registration
		err  error
	)
	if courseID := ctx.Query("courseId"); courseID != "" {
		regs, err = c.registrationService.GetRegistrationsByCourse(ctx, courseID)
	} else {
		regs, err = c.registrationService.GetAllRegistrations(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      regs,
		Timestamp: time.Now(),
	})
}

// GetRegistrationByID returns one registration
func (c *RegistrationController) GetRegistrationByID(ctx *gin.Context) {
	reg, err := c.registrationService.GetRegistrationByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      reg,
		Timestamp: time.Now(),
	})
}

// UpdateRegistrationStatus changes a registration's lifecycle state
func (c *RegistrationController) UpdateRegistrationStatus(ctx *gin.Context) {
	var req dto.UpdateRegistrationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.registrationService.UpdateRegistrationStatus(ctx, ctx.Param("id"), models.RegistrationStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      updated,
		Timestamp: time.Now(),
	})
}

// DeleteRegistration removes a registration
func (c *RegistrationController) DeleteRegistration(ctx *gin.Context) {
	if err := c.registrationService.DeleteRegistration(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Registration deleted"},
		Timestamp: time.Now(),
	})
}
