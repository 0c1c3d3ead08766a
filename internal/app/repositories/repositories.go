// Package repositories holds the portal's storage collaborators. The store
// is transient by design: every repository keeps its records in memory behind
// a mutex and is seeded at startup. Services never touch the maps directly,
// only the explicit operations below.
package repositories

// Repositories is a container for all application repositories
type Repositories struct {
	Courses       *CourseRepository
	Registrations *RegistrationRepository
	Faqs          *FaqRepository
	Announcements *AnnouncementRepository
	Contact       *ContactRepository
}

// NewRepositories creates all repositories, empty
func NewRepositories() *Repositories {
	return &Repositories{
		Courses:       NewCourseRepository(),
		Registrations: NewRegistrationRepository(),
		Faqs:          NewFaqRepository(),
		Announcements: NewAnnouncementRepository(),
		Contact:       NewContactRepository(),
	}
}
