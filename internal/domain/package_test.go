package domain

import (
	"errors"
	"testing"
)

func TestNewPackageStatus(t *testing.T) {
	if got := NewPackage(0, "P1", 0, 2, 5).Status(); got != StatusPending {
		t.Fatalf("status = %s, want %s", got, StatusPending)
	}
	if got := NewPackage(1, "P2", 1, 1, 5).Status(); got != StatusDelivered {
		t.Fatalf("status = %s, want %s", got, StatusDelivered)
	}
}

func TestPackageLifecycle(t *testing.T) {
	pkg := NewPackage(0, "P1", 0, 2, 5)

	if err := pkg.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.Status() != StatusShipping {
		t.Fatalf("status = %s, want %s", pkg.Status(), StatusShipping)
	}

	// intermediate drop moves the origin forward
	if err := pkg.Drop(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.Status() != StatusPending {
		t.Fatalf("status = %s, want %s", pkg.Status(), StatusPending)
	}
	if pkg.Origin != 1 {
		t.Fatalf("origin = %d, want 1", pkg.Origin)
	}

	if err := pkg.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pkg.Drop(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pkg.Delivered() {
		t.Fatalf("status = %s, want %s", pkg.Status(), StatusDelivered)
	}
	if pkg.Origin != 1 {
		t.Errorf("origin changed on final drop: %d", pkg.Origin)
	}
}

func TestPackageRejectsInvalidTransitions(t *testing.T) {
	pending := NewPackage(0, "P1", 0, 2, 5)
	if err := pending.Drop(2); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("drop pending: err = %v, want %v", err, ErrInvalidTransition)
	}

	shipping := NewPackage(1, "P2", 0, 2, 5)
	if err := shipping.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shipping.Load(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("load shipping: err = %v, want %v", err, ErrInvalidTransition)
	}

	delivered := NewPackage(2, "P3", 1, 1, 5)
	if err := delivered.Load(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("load delivered: err = %v, want %v", err, ErrInvalidTransition)
	}
}
