package dto

// UpdateContactRequest represents the admin payload for the contact record
type UpdateContactRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
}
