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

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	GetAllAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, anno models.Announcement) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, anno models.Announcement) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}

// announcementServiceImpl implements the AnnouncementService interface
type announcementServiceImpl struct {
	annoRepo *repositories.AnnouncementRepository
	logger   zerolog.Logger
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(annoRepo *repositories.AnnouncementRepository, logger zerolog.Logger) AnnouncementService {
	return &announcementServiceImpl{annoRepo: annoRepo, logger: logger}
}

func validateAnnouncement(anno models.Announcement) error {
	if strings.TrimSpace(anno.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(anno.Content) == "" {
		return fmt.Errorf("%w: content cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetAllAnnouncements returns all announcements, newest first
func (s *announcementServiceImpl) GetAllAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	return s.annoRepo.GetAll(ctx)
}

// CreateAnnouncement posts a new announcement dated today
func (s *announcementServiceImpl) CreateAnnouncement(ctx context.Context, anno models.Announcement) (*models.Announcement, error) {
	if err := validateAnnouncement(anno); err != nil {
		return nil, err
	}
	if anno.Type == "" {
		anno.Type = models.AnnouncementInfo
	}
	created, err := s.annoRepo.Create(ctx, anno)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("announcementId", created.ID).Msg("Announcement created")
	return created, nil
}

// UpdateAnnouncement edits an announcement
func (s *announcementServiceImpl) UpdateAnnouncement(ctx context.Context, anno models.Announcement) (*models.Announcement, error) {
	if err := validateAnnouncement(anno); err != nil {
		return nil, err
	}
	updated, err := s.annoRepo.Update(ctx, anno)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("announcementId", updated.ID).Msg("Announcement updated")
	return updated, nil
}

// DeleteAnnouncement removes an announcement
func (s *announcementServiceImpl) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := s.annoRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("announcementId", id).Msg("Announcement deleted")
	return nil
}
