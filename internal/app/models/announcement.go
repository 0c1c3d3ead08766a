package models

// AnnouncementType selects the banner style of an announcement.
type AnnouncementType string

const (
	AnnouncementInfo    AnnouncementType = "info"
	AnnouncementSuccess AnnouncementType = "success"
	AnnouncementWarning AnnouncementType = "warning"
)

// Announcement is a dated news entry shown on the portal home page.
type Announcement struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	PostedDate string           `json:"postedDate"`
	Type       AnnouncementType `json:"type"`
}
