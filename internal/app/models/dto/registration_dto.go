package dto

// UpdateRegistrationStatusRequest changes a registration's lifecycle state
type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed pending cancelled"`
}
