package models

import "time"

// CourseStatus is the registration state derived from the current date and
// the four course date boundaries. It is computed on every query and never
// stored, so it cannot go stale across a day boundary.
type CourseStatus string

const (
	StatusOpenForRegistration  CourseStatus = "OPEN_FOR_REGISTRATION"
	StatusUpcomingRegistration CourseStatus = "UPCOMING_REGISTRATION"
	StatusRegistrationClosed   CourseStatus = "REGISTRATION_CLOSED"
	StatusCourseOngoing        CourseStatus = "COURSE_ONGOING"
	StatusCourseEnded          CourseStatus = "COURSE_ENDED"
)

// CanRegister reports whether a course in this state accepts registrations.
func (s CourseStatus) CanRegister() bool {
	return s == StatusOpenForRegistration
}

// Label returns the Thai badge text the portal shows for this state.
func (s CourseStatus) Label() string {
	switch s {
	case StatusOpenForRegistration:
		return "เปิดรับสมัคร"
	case StatusUpcomingRegistration:
		return "เร็วๆ นี้"
	case StatusCourseOngoing:
		return "กำลังอบรม"
	case StatusCourseEnded:
		return "อบรมเสร็จสิ้น"
	default:
		return "ปิดรับสมัคร"
	}
}

// ResolveCourseStatus derives the registration state for the given instant.
//
// Start boundaries are truncated to the start of their day and end boundaries
// extended to the end of theirs, so a boundary date counts in full no matter
// what time of day the check runs. The rules are evaluated in order and the
// first match wins; the ordering matters because malformed data can make the
// ranges overlap. A date set matching no rule (e.g. regEnd before regStart)
// resolves to StatusRegistrationClosed.
func ResolveCourseStatus(now, regStart, regEnd, courseStart, courseEnd time.Time) CourseStatus {
	regStart = startOfDay(regStart)
	courseStart = startOfDay(courseStart)
	regEnd = endOfDay(regEnd)
	courseEnd = endOfDay(courseEnd)

	switch {
	case !now.Before(regStart) && !now.After(regEnd):
		return StatusOpenForRegistration
	case now.Before(regStart):
		return StatusUpcomingRegistration
	case now.After(courseEnd):
		return StatusCourseEnded
	case now.After(regEnd) && !now.Before(courseStart) && !now.After(courseEnd):
		return StatusCourseOngoing
	case now.After(regEnd) && now.Before(courseStart):
		return StatusRegistrationClosed
	default:
		return StatusRegistrationClosed
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, t.Location())
}
