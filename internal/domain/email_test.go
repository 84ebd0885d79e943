package domain

import "testing"

func TestNewEmail(t *testing.T) {
	t.Parallel()

	email, err := NewEmail("alice@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if email.String() != "alice@example.com" {
		t.Errorf("Expected value alice@example.com, got %s", email.String())
	}
	if email.Domain() != "example.com" {
		t.Errorf("Expected domain example.com, got %s", email.Domain())
	}

	// Empty input
	if _, err := NewEmail(""); err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}
	if _, err := NewEmail("   "); err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	// Malformed forms
	for _, raw := range []string{
		"alice",
		"alice@",
		"@example.com",
		"alice@example",
		"alice bob@example.com",
		"alice@exam ple.com",
	} {
		if _, err := NewEmail(raw); err != ErrInvalidEmail {
			t.Errorf("NewEmail(%q): expected error %v, got %v", raw, ErrInvalidEmail, err)
		}
	}
}

func TestEmailEqualityIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	a, err := NewEmail("A@B.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b, err := NewEmail("a@b.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !a.Equals(b) {
		t.Error("Expected A@B.com to equal a@b.com")
	}
	if a.Normalized() != b.Normalized() {
		t.Errorf("Expected equal normalized values, got %s and %s",
			a.Normalized(), b.Normalized())
	}
}

func TestEmailReparseIsIdempotent(t *testing.T) {
	t.Parallel()

	original, err := NewEmail("Carol@Example.COM")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	reparsed, err := NewEmail(original.String())
	if err != nil {
		t.Fatalf("Expected no error re-parsing %q, got %v", original.String(), err)
	}
	if !original.Equals(reparsed) {
		t.Error("Expected re-parsed email to equal the original")
	}
}
