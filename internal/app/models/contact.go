package models

// ContactInfo holds the single contact record shown on the about page.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
