package dto

import "github.com/sorawit/coursereg/internal/app/models"

// CourseResponse is a course as shown to portal visitors. The registration
// state is derived from the dates at read time and never stored.
type CourseResponse struct {
	models.Course
	DerivedStatus models.CourseStatus `json:"derivedStatus"`
	StatusLabel   string              `json:"statusLabel"`
	CanRegister   bool                `json:"canRegister"`
}

// NewCourseResponse derives the visitor-facing state for one course.
func NewCourseResponse(course models.Course, status models.CourseStatus) CourseResponse {
	return CourseResponse{
		Course:        course,
		DerivedStatus: status,
		StatusLabel:   status.Label(),
		CanRegister:   status.CanRegister(),
	}
}

// CreateCourseRequest represents the admin payload for a new course
type CreateCourseRequest struct {
	CourseName        string `json:"courseName" binding:"required"`
	CourseGen         string `json:"courseGen"`
	Description       string `json:"description"`
	StartDate         string `json:"startDate" binding:"required,dateymd"`
	EndDate           string `json:"endDate" binding:"required,dateymd"`
	RegistrationStart string `json:"registrationStart" binding:"required,dateymd"`
	RegistrationEnd   string `json:"registrationEnd" binding:"required,dateymd"`
	MaxParticipants   int    `json:"maxParticipants" binding:"required,min=1"`
	Location          string `json:"location"`
	Instructor        string `json:"instructor"`
	Status            string `json:"status" binding:"omitempty,oneof=active upcoming closed"`
}

// UpdateCourseRequest represents the admin payload for editing a course
type UpdateCourseRequest struct {
	CourseName        string `json:"courseName" binding:"required"`
	CourseGen         string `json:"courseGen"`
	Description       string `json:"description"`
	StartDate         string `json:"startDate" binding:"required,dateymd"`
	EndDate           string `json:"endDate" binding:"required,dateymd"`
	RegistrationStart string `json:"registrationStart" binding:"required,dateymd"`
	RegistrationEnd   string `json:"registrationEnd" binding:"required,dateymd"`
	MaxParticipants   int    `json:"maxParticipants" binding:"required,min=1"`
	Location          string `json:"location"`
	Instructor        string `json:"instructor"`
	Status            string `json:"status" binding:"omitempty,oneof=active upcoming closed"`
}

// ToModel maps a create request onto a course model.
func (r *CreateCourseRequest) ToModel() models.Course {
	return models.Course{
		CourseName:        r.CourseName,
		CourseGen:         r.CourseGen,
		Description:       r.Description,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		RegistrationStart: r.RegistrationStart,
		RegistrationEnd:   r.RegistrationEnd,
		MaxParticipants:   r.MaxParticipants,
		Location:          r.Location,
		Instructor:        r.Instructor,
		Status:            models.AdminCourseStatus(r.Status),
	}
}

// ToModel maps an update request onto a course model with the given ID.
func (r *UpdateCourseRequest) ToModel(courseID string) models.Course {
	return models.Course{
		CourseID:          courseID,
		CourseName:        r.CourseName,
		CourseGen:         r.CourseGen,
		Description:       r.Description,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		RegistrationStart: r.RegistrationStart,
		RegistrationEnd:   r.RegistrationEnd,
		MaxParticipants:   r.MaxParticipants,
		Location:          r.Location,
		Instructor:        r.Instructor,
		Status:            models.AdminCourseStatus(r.Status),
	}
}
