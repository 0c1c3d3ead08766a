package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
)

// CourseRepository stores courses in memory, preserving insertion order for
// stable catalog listings.
type CourseRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.Course
	order []string
}

// NewCourseRepository creates an empty course repository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{byID: make(map[string]*models.Course)}
}

// GetAll returns all courses in insertion order
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]models.Course, 0, len(r.order))
	for _, id := range r.order {
		courses = append(courses, *r.byID[id])
	}
	return courses, nil
}

// GetByID returns a single course
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	course := *c
	return &course, nil
}

// Create inserts a new course. The ID is generated here and the participant
// counter always starts at zero regardless of the request payload.
func (r *CourseRepository) Create(ctx context.Context, course models.Course) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course.CourseID = "C-" + uuid.New().String()
	course.CurrentParticipants = 0

	stored := course
	r.byID[course.CourseID] = &stored
	r.order = append(r.order, course.CourseID)
	return &course, nil
}

// Update replaces an existing course identified by its ID. The participant
// counter is kept from the stored record; only registrations move it.
func (r *CourseRepository) Update(ctx context.Context, course models.Course) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[course.CourseID]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	course.CurrentParticipants = existing.CurrentParticipants

	stored := course
	r.byID[course.CourseID] = &stored
	return &course, nil
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// IncrementParticipants adds one registration to the course counter, clamped
// at maxParticipants. Returns the counter after the increment.
func (r *CourseRepository) IncrementParticipants(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return 0, apperrors.ErrCourseNotFound
	}
	if c.CurrentParticipants < c.MaxParticipants {
		c.CurrentParticipants++
	}
	return c.CurrentParticipants, nil
}

// Load inserts a course with its ID and counters intact. Seeding only.
func (r *CourseRepository) Load(course models.Course) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := course
	r.byID[course.CourseID] = &stored
	r.order = append(r.order, course.CourseID)
}
