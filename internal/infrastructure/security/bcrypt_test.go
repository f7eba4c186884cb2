package security

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/valueobject"
)

func TestBcryptHashAndVerify(t *testing.T) {
	svc := NewBcryptPasswordService(bcrypt.MinCost)
	plain, err := valueobject.NewPlainPassword("password123")
	if err != nil {
		t.Fatal(err)
	}

	hash, err := svc.Hash(context.Background(), plain)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash.String() == "password123" {
		t.Fatal("hash must not equal the raw password")
	}

	ok, err := svc.Verify("password123", hash.String())
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
}

func TestBcryptVerifyMismatch(t *testing.T) {
	svc := NewBcryptPasswordService(bcrypt.MinCost)
	plain, _ := valueobject.NewPlainPassword("password123")
	hash, err := svc.Hash(context.Background(), plain)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := svc.Verify("wrongpassword", hash.String())
	if err != nil {
		t.Fatalf("a plain mismatch is not an error: %v", err)
	}
	if ok {
		t.Fatal("wrong password must not verify")
	}
}

func TestBcryptVerifyMalformedHash(t *testing.T) {
	svc := NewBcryptPasswordService(bcrypt.MinCost)
	ok, err := svc.Verify("password123", "not-a-bcrypt-hash")
	if ok {
		t.Fatal("garbage hash must not verify")
	}
	if !domainerr.IsKind(err, domainerr.KindInfra) {
		t.Fatalf("expected Infra for unparseable hash, got %v", err)
	}
}

func TestBcryptCostClamped(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of failing
	// at hash time.
	svc := NewBcryptPasswordService(99)
	plain, _ := valueobject.NewPlainPassword("password123")
	if _, err := svc.Hash(context.Background(), plain); err != nil {
		t.Fatalf("expected default cost to apply, got %v", err)
	}
}
