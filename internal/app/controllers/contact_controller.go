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

// ContactController handles the contact-info record
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// GetContactInfo returns the contact record
func (c *ContactController) GetContactInfo(ctx *gin.Context) {
	contact, err := c.contactService.GetContactInfo(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      contact,
		Timestamp: time.Now(),
	})
}

// UpdateContactInfo replaces the contact record
func (c *ContactController) UpdateContactInfo(ctx *gin.Context) {
	var req dto.UpdateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid contact data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.contactService.UpdateContactInfo(ctx, models.ContactInfo{
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      updated,
		Timestamp: time.Now(),
	})
}
