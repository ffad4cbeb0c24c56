package users

import (
	"context"
	"testing"
)

func TestRegisterCreatesUser(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	user, err := svc.Register(context.Background(), "Ada@Example.com")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Register(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "ADA@example.com"); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterValidatesEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	cases := []string{"", "   ", "no-at-sign", "@example.com", "trailing@", "spaces in@example.com", "nodot@example"}
	for _, email := range cases {
		if _, err := svc.Register(context.Background(), email); err == nil {
			t.Fatalf("expected error for email %q", email)
		}
	}
}

func TestGetByIDMissing(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.GetByID(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
