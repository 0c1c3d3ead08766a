package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/app/repositories"
	"github.com/sorawit/coursereg/internal/pkg/metrics"
	"github.com/sorawit/coursereg/internal/workflow"
)

// RegistrationService defines the interface for registration operations. It
// doubles as the commit target for registration workflows.
type RegistrationService interface {
	workflow.RegistrationStore

	GetAllRegistrations(ctx context.Context) ([]models.Registration, error)
	GetRegistrationsByCourse(ctx context.Context, courseID string) ([]models.Registration, error)
	GetRegistrationByID(ctx context.Context, id string) (*models.Registration, error)
	UpdateRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus) (*models.Registration, error)
	DeleteRegistration(ctx context.Context, id string) error
}

// registrationServiceImpl implements the RegistrationService interface
type registrationServiceImpl struct {
	registrationRepo *repositories.RegistrationRepository
	courseRepo       *repositories.CourseRepository
	now              func() time.Time
	logger           zerolog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(
	registrationRepo *repositories.RegistrationRepository,
	courseRepo *repositories.CourseRepository,
	now func() time.Time,
	logger zerolog.Logger,
) RegistrationService {
	if now == nil {
		now = time.Now
	}
	return &registrationServiceImpl{
		registrationRepo: registrationRepo,
		courseRepo:       courseRepo,
		now:              now,
		logger:           logger,
	}
}

// CreateRegistration commits a finished workflow draft. The service owns the
// generated ID, the registration date, the confirmed status and the course
// participant increment. The increment is clamped at course capacity by the
// repository, so a full course still accepts the registration without
// overshooting the counter.
func (s *registrationServiceImpl) CreateRegistration(ctx context.Context, draft workflow.Draft, courseID string) (*models.Registration, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		metrics.RegistrationFailuresTotal.Inc()
		return nil, fmt.Errorf("failed to load course for registration: %w", err)
	}

	reg := models.Registration{
		RegistrationID:   "R-" + uuid.New().String(),
		CourseID:         course.CourseID,
		CourseName:       course.CourseName,
		FirstName:        draft.FirstName,
		LastName:         draft.LastName,
		IDCard:           draft.IDCard,
		BirthDate:        draft.BirthDate,
		Phone:            draft.Phone,
		Email:            draft.Email,
		Organization:     draft.Organization,
		Position:         draft.Position,
		Address:          draft.Address,
		StudentID:        draft.StudentID,
		RegistrationDate: s.now().Format(models.DateLayout),
		Status:           models.RegistrationConfirmed,
	}

	if err := s.registrationRepo.Insert(ctx, reg); err != nil {
		metrics.RegistrationFailuresTotal.Inc()
		return nil, fmt.Errorf("failed to store registration: %w", err)
	}

	count, err := s.courseRepo.IncrementParticipants(ctx, course.CourseID)
	if err != nil {
		// The registration is already committed; log and keep going.
		s.logger.Warn().Err(err).Str("courseId", course.CourseID).Msg("Failed to increment participant counter")
	}

	metrics.RegistrationsTotal.WithLabelValues(course.CourseID).Inc()
	s.logger.Info().
		Str("registrationId", reg.RegistrationID).
		Str("courseId", course.CourseID).
		Int("participants", count).
		Msg("Registration created")
	return &reg, nil
}

// GetAllRegistrations returns every registration
func (s *registrationServiceImpl) GetAllRegistrations(ctx context.Context) ([]models.Registration, error) {
	return s.registrationRepo.GetAll(ctx)
}

// GetRegistrationsByCourse returns the registrations of one course
func (s *registrationServiceImpl) GetRegistrationsByCourse(ctx context.Context, courseID string) ([]models.Registration, error) {
	return s.registrationRepo.GetByCourse(ctx, courseID)
}

// GetRegistrationByID returns one registration
func (s *registrationServiceImpl) GetRegistrationByID(ctx context.Context, id string) (*models.Registration, error) {
	return s.registrationRepo.GetByID(ctx, id)
}

// UpdateRegistrationStatus changes a registration's lifecycle state
func (s *registrationServiceImpl) UpdateRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus) (*models.Registration, error) {
	updated, err := s.registrationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("registrationId", id).Str("status", string(status)).Msg("Registration status updated")
	return updated, nil
}

// DeleteRegistration removes a registration
func (s *registrationServiceImpl) DeleteRegistration(ctx context.Context, id string) error {
	if err := s.registrationRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("registrationId", id).Msg("Registration deleted")
	return nil
}
