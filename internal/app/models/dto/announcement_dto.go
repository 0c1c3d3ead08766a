package dto

// CreateAnnouncementRequest represents the admin payload for a new announcement
type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=info success warning"`
}

// UpdateAnnouncementRequest represents the admin payload for editing an announcement
type UpdateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=info success warning"`
}
