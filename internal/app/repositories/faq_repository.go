package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
)

// FaqRepository stores FAQ entries in memory.
type FaqRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.Faq
	order []string
}

// NewFaqRepository creates an empty FAQ repository
func NewFaqRepository() *FaqRepository {
	return &FaqRepository{byID: make(map[string]*models.Faq)}
}

// GetAll returns all FAQ entries in insertion order
func (r *FaqRepository) GetAll(ctx context.Context) ([]models.Faq, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	faqs := make([]models.Faq, 0, len(r.order))
	for _, id := range r.order {
		faqs = append(faqs, *r.byID[id])
	}
	return faqs, nil
}

// Create inserts a new FAQ entry
func (r *FaqRepository) Create(ctx context.Context, faq models.Faq) (*models.Faq, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	faq.ID = "faq-" + uuid.New().String()
	stored := faq
	r.byID[faq.ID] = &stored
	r.order = append(r.order, faq.ID)
	return &faq, nil
}

// Update replaces an existing FAQ entry
func (r *FaqRepository) Update(ctx context.Context, faq models.Faq) (*models.Faq, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[faq.ID]; !ok {
		return nil, apperrors.ErrFaqNotFound
	}
	stored := faq
	r.byID[faq.ID] = &stored
	return &faq, nil
}

// Delete removes a FAQ entry
func (r *FaqRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperrors.ErrFaqNotFound
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

// Load inserts a FAQ entry with its ID intact. Seeding only.
func (r *FaqRepository) Load(faq models.Faq) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := faq
	r.byID[faq.ID] = &stored
	r.order = append(r.order, faq.ID)
}
