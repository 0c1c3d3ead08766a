package validation

import "testing"

func TestIsBasicEmail(t *testing.T) {
	valid := []string{
		"somsak@example.com",
		"a@b.co",
		"first.last@sub.domain.org",
	}
	for _, s := range valid {
		if !IsBasicEmail(s) {
			t.Errorf("%q should be accepted", s)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"no domain@example.com",
		"two@@example.com",
		"a@b@c.com",
		"trailing@example.",
		"nodot@example",
		"@example.com",
		"user@",
		"user@.com",
	}
	for _, s := range invalid {
		if IsBasicEmail(s) {
			t.Errorf("%q should be rejected", s)
		}
	}
}

func TestAllFilled(t *testing.T) {
	if !AllFilled("a", "b", "c") {
		t.Error("all non-empty should pass")
	}
	if AllFilled("a", "", "c") {
		t.Error("empty value should fail")
	}
	if AllFilled("a", "   ", "c") {
		t.Error("whitespace-only value should fail")
	}
}

func TestIsISODate(t *testing.T) {
	if !IsISODate("1995-08-15") {
		t.Error("valid date rejected")
	}
	if IsISODate("15/08/1995") {
		t.Error("wrong layout accepted")
	}
}
