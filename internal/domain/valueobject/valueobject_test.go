package valueobject

import (
	"strings"
	"testing"

	"ferroblog/internal/domain/domainerr"
)

func assertValidation(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	if kind := domainerr.KindOf(err); kind != domainerr.KindValidation {
		t.Fatalf("expected validation kind, got %v", kind)
	}
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple address", "a@b.com", true},
		{"bare at sign", "@", true},
		{"missing at sign", "not-an-email", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := NewEmail(tc.input)
			if tc.valid {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if email.String() != tc.input {
					t.Fatalf("expected %q, got %q", tc.input, email.String())
				}
				return
			}
			assertValidation(t, err)
		})
	}
}

func TestNewPlainPassword(t *testing.T) {
	if _, err := NewPlainPassword("short"); err == nil {
		t.Fatal("expected error for password shorter than 8 chars")
	} else {
		assertValidation(t, err)
	}
	if _, err := NewPlainPassword("1234567"); err == nil {
		t.Fatal("expected error for 7-char password")
	}
	p, err := NewPlainPassword("12345678")
	if err != nil {
		t.Fatalf("expected 8-char password to be valid, got %v", err)
	}
	if p.Raw() != "12345678" {
		t.Fatalf("unexpected raw value %q", p.Raw())
	}
}

func TestNewPostTitle(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{"plain title", "Hello", true},
		{"exactly 200 chars", strings.Repeat("a", 200), true},
		{"201 chars", strings.Repeat("a", 201), false},
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPostTitle(tc.input)
			if tc.valid && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !tc.valid {
				assertValidation(t, err)
			}
		})
	}
}

func TestNewPostContent(t *testing.T) {
	if _, err := NewPostContent("  "); err == nil {
		t.Fatal("expected error for whitespace-only content")
	}
	// No maximum length on post content.
	if _, err := NewPostContent(strings.Repeat("x", 100_000)); err != nil {
		t.Fatalf("expected long content to be valid, got %v", err)
	}
}

func TestNewCommentContent(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{"plain comment", "nice post", true},
		{"exactly 2000 chars", strings.Repeat("a", 2000), true},
		{"2001 chars", strings.Repeat("a", 2001), false},
		{"empty", "", false},
		{"whitespace only", " \t ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCommentContent(tc.input)
			if tc.valid && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !tc.valid {
				assertValidation(t, err)
			}
		})
	}
}

func TestEmailEqualityByValue(t *testing.T) {
	a, _ := NewEmail("a@b.com")
	b, _ := NewEmail("a@b.com")
	if a != b {
		t.Fatal("expected value equality for identical emails")
	}
}
