package models

import "time"

// Course represents a training course offered by the college.
// Date fields travel as ISO "YYYY-MM-DD" strings, matching the wire format
// the portal frontend uses.
type Course struct {
	CourseID            string            `json:"courseId"`
	CourseName          string            `json:"courseName"`
	CourseGen           string            `json:"courseGen"`
	Description         string            `json:"description"`
	StartDate           string            `json:"startDate"`
	EndDate             string            `json:"endDate"`
	RegistrationStart   string            `json:"registrationStart"`
	RegistrationEnd     string            `json:"registrationEnd"`
	MaxParticipants     int               `json:"maxParticipants"`
	CurrentParticipants int               `json:"currentParticipants"`
	Location            string            `json:"location"`
	Instructor          string            `json:"instructor"`
	Status              AdminCourseStatus `json:"status"`
}

// AdminCourseStatus is the label an admin assigns when editing a course.
// It is stored as-is; the registration state shown to visitors is always
// derived from the dates instead (see ResolveCourseStatus).
type AdminCourseStatus string

const (
	AdminStatusActive   AdminCourseStatus = "active"
	AdminStatusUpcoming AdminCourseStatus = "upcoming"
	AdminStatusClosed   AdminCourseStatus = "closed"
)

// DateLayout is the ISO date layout used throughout the portal.
const DateLayout = "2006-01-02"

// DerivedStatus resolves the registration state of the course as of now.
// Unparseable dates resolve to StatusRegistrationClosed, the same branch
// malformed date ranges fall into.
func (c *Course) DerivedStatus(now time.Time) CourseStatus {
	regStart, err1 := time.ParseInLocation(DateLayout, c.RegistrationStart, now.Location())
	regEnd, err2 := time.ParseInLocation(DateLayout, c.RegistrationEnd, now.Location())
	courseStart, err3 := time.ParseInLocation(DateLayout, c.StartDate, now.Location())
	courseEnd, err4 := time.ParseInLocation(DateLayout, c.EndDate, now.Location())
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return StatusRegistrationClosed
	}
	return ResolveCourseStatus(now, regStart, regEnd, courseStart, courseEnd)
}
