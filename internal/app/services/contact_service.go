package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/app/repositories"
)

// ContactService defines the interface for the contact record
type ContactService interface {
	GetContactInfo(ctx context.Context) (models.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, contact models.ContactInfo) (models.ContactInfo, error)
}

// contactServiceImpl implements the ContactService interface
type contactServiceImpl struct {
	contactRepo *repositories.ContactRepository
	logger      zerolog.Logger
}

// NewContactService creates a new contact service instance
func NewContactService(contactRepo *repositories.ContactRepository, logger zerolog.Logger) ContactService {
	return &contactServiceImpl{contactRepo: contactRepo, logger: logger}
}

// GetContactInfo returns the contact record
func (s *contactServiceImpl) GetContactInfo(ctx context.Context) (models.ContactInfo, error) {
	return s.contactRepo.Get(ctx)
}

// UpdateContactInfo replaces the contact record
func (s *contactServiceImpl) UpdateContactInfo(ctx context.Context, contact models.ContactInfo) (models.ContactInfo, error) {
	updated, err := s.contactRepo.Update(ctx, contact)
	if err != nil {
		return models.ContactInfo{}, err
	}
	s.logger.Info().Msg("Contact info updated")
	return updated, nil
}
