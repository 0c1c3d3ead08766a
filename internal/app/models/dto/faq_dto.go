package dto

// CreateFaqRequest represents the admin payload for a new FAQ entry
type CreateFaqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// UpdateFaqRequest represents the admin payload for editing a FAQ entry
type UpdateFaqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}
