package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestMinLength(t *testing.T) {
	cases := []struct {
		input string
		n     int
		want  bool
	}{
		{"family emergency", 10, true},
		{"short", 10, false},
		{"          ", 1, false},
		{"  padded out  ", 10, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got := MinLength(c.input, c.n)
		if got != c.want {
			t.Errorf("MinLength(%q, %d) = %v, want %v", c.input, c.n, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"annual", "sick", "unpaid"}
	if !IsInSlice("sick", slice) {
		t.Error("IsInSlice(\"sick\") = false, want true")
	}
	if IsInSlice("sabbatical", slice) {
		t.Error("IsInSlice(\"sabbatical\") = true, want false")
	}
}
