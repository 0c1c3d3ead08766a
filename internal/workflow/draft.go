package workflow

// Draft holds the in-progress registration data. It exists only inside a
// workflow instance: created empty on open, mutated field by field, and
// either consumed by a successful submit or discarded on close.
type Draft struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	IDCard       string `json:"idCard"`
	BirthDate    string `json:"birthDate"`
	StudentID    string `json:"studentId"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Position     string `json:"position"`
	Address      string `json:"address"`

	Attachments []Attachment `json:"attachments"`
}

// Attachment is one accepted document. Images carry an inline preview,
// other file types do not.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	Data        []byte `json:"-"`
	Preview     string `json:"preview,omitempty"`
}

// FieldPatch is a partial draft update; nil fields are left untouched.
type FieldPatch struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	IDCard       *string `json:"idCard"`
	BirthDate    *string `json:"birthDate"`
	StudentID    *string `json:"studentId"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Organization *string `json:"organization"`
	Position     *string `json:"position"`
	Address      *string `json:"address"`
}

func (d *Draft) apply(p FieldPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.FirstName, p.FirstName)
	set(&d.LastName, p.LastName)
	set(&d.IDCard, p.IDCard)
	set(&d.BirthDate, p.BirthDate)
	set(&d.StudentID, p.StudentID)
	set(&d.Phone, p.Phone)
	set(&d.Email, p.Email)
	set(&d.Organization, p.Organization)
	set(&d.Position, p.Position)
	set(&d.Address, p.Address)
}

func (d *Draft) clone() Draft {
	out := *d
	out.Attachments = make([]Attachment, len(d.Attachments))
	copy(out.Attachments, d.Attachments)
	return out
}
