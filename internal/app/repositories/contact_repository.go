package repositories

import (
	"context"
	"sync"

	"github.com/sorawit/coursereg/internal/app/models"
)

// ContactRepository stores the single contact-info record.
type ContactRepository struct {
	mu      sync.RWMutex
	contact models.ContactInfo
}

// NewContactRepository creates a contact repository with an empty record
func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

// Get returns the current contact info
func (r *ContactRepository) Get(ctx context.Context) (models.ContactInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.contact, nil
}

// Update replaces the contact info and returns the stored copy
func (r *ContactRepository) Update(ctx context.Context, contact models.ContactInfo) (models.ContactInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contact = contact
	return r.contact, nil
}

// Load replaces the contact record. Seeding only.
func (r *ContactRepository) Load(contact models.ContactInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contact = contact
}
