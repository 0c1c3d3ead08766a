package models

// Faq is a single question/answer entry on the public FAQ page.
type Faq struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
