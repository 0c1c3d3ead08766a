package models

// RegistrationStatus is the lifecycle state of a committed registration.
type RegistrationStatus string

const (
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

// Registration is a committed course registration, owned by the store once
// created. Successful submissions always enter as "confirmed".
type Registration struct {
	RegistrationID   string             `json:"registrationId"`
	CourseID         string             `json:"courseId"`
	CourseName       string             `json:"courseName"`
	FirstName        string             `json:"firstName"`
	LastName         string             `json:"lastName"`
	IDCard           string             `json:"idCard"`
	BirthDate        string             `json:"birthDate"`
	Phone            string             `json:"phone"`
	Email            string             `json:"email"`
	Organization     string             `json:"organization"`
	Position         string             `json:"position"`
	Address          string             `json:"address"`
	StudentID        string             `json:"studentId"`
	RegistrationDate string             `json:"registrationDate"`
	Status           RegistrationStatus `json:"status"`
}
