package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/app/models/dto"
	"github.com/sorawit/coursereg/internal/app/repositories"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
)

// CourseService defines the interface for course catalog operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error)
	GetCourseByID(ctx context.Context, id string) (*dto.CourseResponse, error)
	CreateCourse(ctx context.Context, course models.Course) (*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, course models.Course) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id string) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	now        func() time.Time
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance. The clock is
// injectable so status derivation can be pinned in tests.
func NewCourseService(courseRepo *repositories.CourseRepository, now func() time.Time, logger zerolog.Logger) CourseService {
	if now == nil {
		now = time.Now
	}
	return &courseServiceImpl{
		courseRepo: courseRepo,
		now:        now,
		logger:     logger,
	}
}

// GetAllCourses returns the catalog with the registration state derived at
// read time for each course.
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.NewCourseResponse(c, c.DerivedStatus(now)))
	}
	return out, nil
}

// GetCourseByID returns one course with its derived registration state.
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCourseResponse(*course, course.DerivedStatus(s.now()))
	return &resp, nil
}

// validateCourseDates checks the date fields parse and are ordered sanely.
func validateCourseDates(course models.Course) error {
	parse := func(field, value string) (time.Time, error) {
		t, err := time.Parse(models.DateLayout, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", apperrors.ErrValidationFailed, field)
		}
		return t, nil
	}

	regStart, err := parse("registrationStart", course.RegistrationStart)
	if err != nil {
		return err
	}
	regEnd, err := parse("registrationEnd", course.RegistrationEnd)
	if err != nil {
		return err
	}
	start, err := parse("startDate", course.StartDate)
	if err != nil {
		return err
	}
	end, err := parse("endDate", course.EndDate)
	if err != nil {
		return err
	}

	if regEnd.Before(regStart) {
		return fmt.Errorf("%w: registrationEnd is before registrationStart", apperrors.ErrValidationFailed)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: endDate is before startDate", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCourse adds a course to the catalog
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course models.Course) (*dto.CourseResponse, error) {
	if strings.TrimSpace(course.CourseName) == "" {
		return nil, fmt.Errorf("%w: courseName cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := validateCourseDates(course); err != nil {
		return nil, err
	}
	if course.Status == "" {
		course.Status = models.AdminStatusUpcoming
	}

	created, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseId", created.CourseID).Str("courseName", created.CourseName).Msg("Course created")
	resp := dto.NewCourseResponse(*created, created.DerivedStatus(s.now()))
	return &resp, nil
}

// UpdateCourse replaces an existing course's editable fields
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course models.Course) (*dto.CourseResponse, error) {
	if strings.TrimSpace(course.CourseName) == "" {
		return nil, fmt.Errorf("%w: courseName cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := validateCourseDates(course); err != nil {
		return nil, err
	}

	updated, err := s.courseRepo.Update(ctx, course)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseId", updated.CourseID).Msg("Course updated")
	resp := dto.NewCourseResponse(*updated, updated.DerivedStatus(s.now()))
	return &resp, nil
}

// DeleteCourse removes a course from the catalog
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("courseId", id).Msg("Course deleted")
	return nil
}
