package models

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveCourseStatus(t *testing.T) {
	// Registration 2025-01-01..2025-02-28, course 2025-03-10..2025-03-20.
	regStart := date("2025-01-01")
	regEnd := date("2025-02-28")
	courseStart := date("2025-03-10")
	courseEnd := date("2025-03-20")

	cases := []struct {
		name string
		now  time.Time
		want CourseStatus
	}{
		{"before registration", date("2024-12-15"), StatusUpcomingRegistration},
		{"first registration day", date("2025-01-01"), StatusOpenForRegistration},
		{"mid registration", date("2025-02-01"), StatusOpenForRegistration},
		{"last registration day", date("2025-02-28"), StatusOpenForRegistration},
		{"between registration and course", date("2025-03-05"), StatusRegistrationClosed},
		{"first course day", date("2025-03-10"), StatusCourseOngoing},
		{"last course day", date("2025-03-20"), StatusCourseOngoing},
		{"after course", date("2025-03-21"), StatusCourseEnded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveCourseStatus(tc.now, regStart, regEnd, courseStart, courseEnd)
			if got != tc.want {
				t.Errorf("now=%s: got %s, want %s", tc.now.Format(DateLayout), got, tc.want)
			}
		})
	}
}

func TestResolveCourseStatusEndOfDayExtension(t *testing.T) {
	regStart := date("2025-01-01")
	regEnd := date("2025-02-28")
	courseStart := date("2025-03-10")
	courseEnd := date("2025-03-20")

	// Midnight on the registration deadline is still inside the window.
	now := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	if got := ResolveCourseStatus(now, regStart, regEnd, courseStart, courseEnd); got != StatusOpenForRegistration {
		t.Errorf("midnight on regEnd: got %s, want %s", got, StatusOpenForRegistration)
	}

	// Late evening on the deadline too.
	now = time.Date(2025, 2, 28, 23, 30, 0, 0, time.UTC)
	if got := ResolveCourseStatus(now, regStart, regEnd, courseStart, courseEnd); got != StatusOpenForRegistration {
		t.Errorf("evening on regEnd: got %s, want %s", got, StatusOpenForRegistration)
	}

	// Late evening on the final course day is still ongoing, not ended.
	now = time.Date(2025, 3, 20, 23, 30, 0, 0, time.UTC)
	if got := ResolveCourseStatus(now, regStart, regEnd, courseStart, courseEnd); got != StatusCourseOngoing {
		t.Errorf("evening on courseEnd: got %s, want %s", got, StatusCourseOngoing)
	}
}

func TestResolveCourseStatusCanRegister(t *testing.T) {
	all := []CourseStatus{
		StatusOpenForRegistration,
		StatusUpcomingRegistration,
		StatusRegistrationClosed,
		StatusCourseOngoing,
		StatusCourseEnded,
	}
	for _, s := range all {
		want := s == StatusOpenForRegistration
		if s.CanRegister() != want {
			t.Errorf("%s: CanRegister=%v, want %v", s, s.CanRegister(), want)
		}
	}
}

func TestResolveCourseStatusMalformedRange(t *testing.T) {
	// regEnd before regStart and the course already over: no rule matches
	// cleanly, the resolver degrades to closed instead of erroring.
	now := date("2025-06-15")
	got := ResolveCourseStatus(now, date("2025-06-10"), date("2025-06-01"), date("2025-07-01"), date("2025-05-01"))
	if got != StatusCourseEnded && got != StatusRegistrationClosed {
		t.Fatalf("malformed range resolved to %s", got)
	}

	// Fully inverted data where now sits between everything.
	got = ResolveCourseStatus(date("2025-06-05"), date("2025-06-10"), date("2025-06-01"), date("2025-06-20"), date("2025-06-18"))
	if got != StatusUpcomingRegistration {
		// now < regStart wins before any course rule is consulted.
		t.Fatalf("inverted range resolved to %s", got)
	}
}

func TestResolveCourseStatusIdempotent(t *testing.T) {
	now := time.Date(2025, 2, 10, 14, 30, 12, 0, time.UTC)
	a := ResolveCourseStatus(now, date("2025-01-01"), date("2025-02-28"), date("2025-03-10"), date("2025-03-20"))
	b := ResolveCourseStatus(now, date("2025-01-01"), date("2025-02-28"), date("2025-03-10"), date("2025-03-20"))
	if a != b {
		t.Fatalf("resolver not idempotent: %s vs %s", a, b)
	}
}

func TestCourseDerivedStatus(t *testing.T) {
	c := &Course{
		StartDate:         "2025-03-10",
		EndDate:           "2025-03-20",
		RegistrationStart: "2025-01-01",
		RegistrationEnd:   "2025-02-28",
	}
	if got := c.DerivedStatus(date("2025-02-01")); got != StatusOpenForRegistration {
		t.Errorf("got %s, want open", got)
	}

	// Broken date strings take the closed branch rather than erroring.
	c.RegistrationEnd = "not-a-date"
	if got := c.DerivedStatus(date("2025-02-01")); got != StatusRegistrationClosed {
		t.Errorf("broken date: got %s, want closed", got)
	}
}
