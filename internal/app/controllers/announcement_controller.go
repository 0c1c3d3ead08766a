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

// AnnouncementController handles announcement operations
type AnnouncementController struct {
	annoService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(annoService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{annoService: annoService}
}

// GetAllAnnouncements returns all announcements, newest first
func (c *AnnouncementController) GetAllAnnouncements(ctx *gin.Context) {
	annos, err := c.annoService.GetAllAnnouncements(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      annos,
		Timestamp: time.Now(),
	})
}

// CreateAnnouncement posts an announcement dated today
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.annoService.CreateAnnouncement(ctx, models.Announcement{
		Title:   req.Title,
		Content: req.Content,
		Type:    models.AnnouncementType(req.Type),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// UpdateAnnouncement edits an announcement
func (c *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid announcement data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	existing, err := c.annoService.GetAllAnnouncements(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	postedDate := ""
	for _, a := range existing {
		if a.ID == ctx.Param("id") {
			postedDate = a.PostedDate
			break
		}
	}

	updated, err := c.annoService.UpdateAnnouncement(ctx, models.Announcement{
		ID:         ctx.Param("id"),
		Title:      req.Title,
		Content:    req.Content,
		PostedDate: postedDate,
		Type:       models.AnnouncementType(req.Type),
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

// DeleteAnnouncement removes an announcement
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	if err := c.annoService.DeleteAnnouncement(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Announcement deleted"},
		Timestamp: time.Now(),
	})
}
