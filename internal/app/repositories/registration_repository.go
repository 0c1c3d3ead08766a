package repositories

import (
	"context"
	"sync"

	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
)

// RegistrationRepository stores committed registrations in memory.
type RegistrationRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.Registration
	order []string
}

// NewRegistrationRepository creates an empty registration repository
func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{byID: make(map[string]*models.Registration)}
}

// GetAll returns all registrations in insertion order
func (r *RegistrationRepository) GetAll(ctx context.Context) ([]models.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := make([]models.Registration, 0, len(r.order))
	for _, id := range r.order {
		regs = append(regs, *r.byID[id])
	}
	return regs, nil
}

// GetByCourse returns the registrations belonging to one course
func (r *RegistrationRepository) GetByCourse(ctx context.Context, courseID string) ([]models.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var regs []models.Registration
	for _, id := range r.order {
		if r.byID[id].CourseID == courseID {
			regs = append(regs, *r.byID[id])
		}
	}
	return regs, nil
}

// GetByID returns a single registration
func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*models.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	out := *reg
	return &out, nil
}

// Insert stores a fully composed registration. The caller owns ID generation
// and field composition; this is pure storage.
func (r *RegistrationRepository) Insert(ctx context.Context, reg models.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[reg.RegistrationID]; ok {
		return apperrors.ErrResourceAlreadyExists
	}
	stored := reg
	r.byID[reg.RegistrationID] = &stored
	r.order = append(r.order, reg.RegistrationID)
	return nil
}

// UpdateStatus changes the lifecycle status of a registration
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus) (*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	reg.Status = status
	out := *reg
	return &out, nil
}

// Delete removes a registration
func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperrors.ErrRegistrationNotFound
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

// Load inserts a registration without uniqueness checks. Seeding only.
func (r *RegistrationRepository) Load(reg models.Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := reg
	r.byID[reg.RegistrationID] = &stored
	r.order = append(r.order, reg.RegistrationID)
}
