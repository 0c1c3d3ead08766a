package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
)

// AnnouncementRepository stores announcements in memory.
type AnnouncementRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Announcement
}

// NewAnnouncementRepository creates an empty announcement repository
func NewAnnouncementRepository() *AnnouncementRepository {
	return &AnnouncementRepository{byID: make(map[string]*models.Announcement)}
}

// GetAll returns all announcements sorted by posted date, newest first.
func (r *AnnouncementRepository) GetAll(ctx context.Context) ([]models.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	annos := make([]models.Announcement, 0, len(r.byID))
	for _, a := range r.byID {
		annos = append(annos, *a)
	}
	sort.Slice(annos, func(i, j int) bool {
		ti, _ := time.Parse(models.DateLayout, annos[i].PostedDate)
		tj, _ := time.Parse(models.DateLayout, annos[j].PostedDate)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return annos[i].ID < annos[j].ID
	})
	return annos, nil
}

// Create inserts a new announcement stamped with today's date
func (r *AnnouncementRepository) Create(ctx context.Context, anno models.Announcement) (*models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	anno.ID = "anno-" + uuid.New().String()
	anno.PostedDate = time.Now().Format(models.DateLayout)
	stored := anno
	r.byID[anno.ID] = &stored
	return &anno, nil
}

// Update replaces an existing announcement
func (r *AnnouncementRepository) Update(ctx context.Context, anno models.Announcement) (*models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[anno.ID]; !ok {
		return nil, apperrors.ErrAnnouncementNotFound
	}
	stored := anno
	r.byID[anno.ID] = &stored
	return &anno, nil
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperrors.ErrAnnouncementNotFound
	}
	delete(r.byID, id)
	return nil
}

// Load inserts an announcement with ID and date intact. Seeding only.
func (r *AnnouncementRepository) Load(anno models.Announcement) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := anno
	r.byID[anno.ID] = &stored
}
