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

// FaqController handles FAQ operations
type FaqController struct {
	faqService services.FaqService
}

// NewFaqController creates a new FaqController
func NewFaqController(faqService services.FaqService) *FaqController {
	return &FaqController{faqService: faqService}
}

// GetAllFaqs returns all FAQ entries
func (c *FaqController) GetAllFaqs(ctx *gin.Context) {
	faqs, err := c.faqService.GetAllFaqs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faqs,
		Timestamp: time.Now(),
	})
}

// CreateFaq adds a FAQ entry
func (c *FaqController) CreateFaq(ctx *gin.Context) {
	var req dto.CreateFaqRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid FAQ data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.faqService.CreateFaq(ctx, models.Faq{Question: req.Question, Answer: req.Answer})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// UpdateFaq edits a FAQ entry
func (c *FaqController) UpdateFaq(ctx *gin.Context) {
	var req dto.UpdateFaqRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid FAQ data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.faqService.UpdateFaq(ctx, models.Faq{
		ID:       ctx.Param("id"),
		Question: req.Question,
		Answer:   req.Answer,
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

// DeleteFaq removes a FAQ entry
func (c *FaqController) DeleteFaq(ctx *gin.Context) {
	if err := c.faqService.DeleteFaq(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "FAQ deleted"},
		Timestamp: time.Now(),
	})
}
