package dto

import (
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/workflow"
)

// OpenSessionResponse is returned when a registration session opens.
type OpenSessionResponse struct {
	SessionToken string          `json:"sessionToken"`
	State        SessionStateDTO `json:"state"`
}

// Notice is a queued user notification drained with the session state.
type Notice struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// SessionStateDTO is the externally visible state of a registration session.
type SessionStateDTO struct {
	Phase           string               `json:"phase"`
	Step            int                  `json:"step"`
	Draft           workflow.Draft       `json:"draft"`
	ValidationError string               `json:"validationError,omitempty"`
	InFlight        bool                 `json:"inFlight"`
	Result          *models.Registration `json:"result,omitempty"`
	Course          CourseResponse       `json:"course"`
	Notices         []Notice             `json:"notices,omitempty"`
}

// DraftPatchRequest is a partial draft update; absent fields stay untouched.
type DraftPatchRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	IDCard       *string `json:"idCard"`
	BirthDate    *string `json:"birthDate" binding:"omitempty"`
	StudentID    *string `json:"studentId"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Organization *string `json:"organization"`
	Position     *string `json:"position"`
	Address      *string `json:"address"`
}

// ToPatch converts the request to a workflow field patch.
func (r *DraftPatchRequest) ToPatch() workflow.FieldPatch {
	return workflow.FieldPatch{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		IDCard:       r.IDCard,
		BirthDate:    r.BirthDate,
		StudentID:    r.StudentID,
		Phone:        r.Phone,
		Email:        r.Email,
		Organization: r.Organization,
		Position:     r.Position,
		Address:      r.Address,
	}
}

// IngestResponse summarizes one document upload batch.
type IngestResponse struct {
	Accepted int             `json:"accepted"`
	Rejected int             `json:"rejected"`
	State    SessionStateDTO `json:"state"`
}

// SubmitResponse carries the committed registration plus the session state.
type SubmitResponse struct {
	Registration *models.Registration `json:"registration"`
	State        SessionStateDTO      `json:"state"`
}
