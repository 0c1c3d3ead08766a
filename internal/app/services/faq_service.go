package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/app/repositories"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
)

// FaqService defines the interface for FAQ operations
type FaqService interface {
	GetAllFaqs(ctx context.Context) ([]models.Faq, error)
	CreateFaq(ctx context.Context, faq models.Faq) (*models.Faq, error)
	UpdateFaq(ctx context.Context, faq models.Faq) (*models.Faq, error)
	DeleteFaq(ctx context.Context, id string) error
}

// faqServiceImpl implements the FaqService interface
type faqServiceImpl struct {
	faqRepo *repositories.FaqRepository
	logger  zerolog.Logger
}

// NewFaqService creates a new FAQ service instance
func NewFaqService(faqRepo *repositories.FaqRepository, logger zerolog.Logger) FaqService {
	return &faqServiceImpl{faqRepo: faqRepo, logger: logger}
}

func validateFaq(faq models.Faq) error {
	if strings.TrimSpace(faq.Question) == "" {
		return fmt.Errorf("%w: question cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(faq.Answer) == "" {
		return fmt.Errorf("%w: answer cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetAllFaqs returns all FAQ entries
func (s *faqServiceImpl) GetAllFaqs(ctx context.Context) ([]models.Faq, error) {
	return s.faqRepo.GetAll(ctx)
}

// CreateFaq adds a FAQ entry
func (s *faqServiceImpl) CreateFaq(ctx context.Context, faq models.Faq) (*models.Faq, error) {
	if err := validateFaq(faq); err != nil {
		return nil, err
	}
	created, err := s.faqRepo.Create(ctx, faq)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("faqId", created.ID).Msg("FAQ created")
	return created, nil
}

// UpdateFaq edits a FAQ entry
func (s *faqServiceImpl) UpdateFaq(ctx context.Context, faq models.Faq) (*models.Faq, error) {
	if err := validateFaq(faq); err != nil {
		return nil, err
	}
	updated, err := s.faqRepo.Update(ctx, faq)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("faqId", updated.ID).Msg("FAQ updated")
	return updated, nil
}

// DeleteFaq removes a FAQ entry
func (s *faqServiceImpl) DeleteFaq(ctx context.Context, id string) error {
	if err := s.faqRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("faqId", id).Msg("FAQ deleted")
	return nil
}
