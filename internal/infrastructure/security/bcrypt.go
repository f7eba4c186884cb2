package security

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/security"
	"ferroblog/internal/domain/valueobject"
)

// BcryptPasswordService implements both hashing and verification against
// bcrypt hashes. Cost is process-lifetime configuration.
type BcryptPasswordService struct {
	cost int
}

func NewBcryptPasswordService(cost int) *BcryptPasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordService{cost: cost}
}

func (s *BcryptPasswordService) Hash(_ context.Context, plain valueobject.PlainPassword) (valueobject.PasswordHash, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain.Raw()), s.cost)
	if err != nil {
		return valueobject.PasswordHash{}, domainerr.Infra("hashing password", err)
	}
	return valueobject.NewPasswordHash(string(b)), nil
}

// Verify returns false without error for an honest mismatch; only a hash that
// bcrypt cannot parse is an infrastructure failure.
func (s *BcryptPasswordService) Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domainerr.Infra("comparing password hash", err)
	}
}

var (
	_ security.PasswordHasher   = (*BcryptPasswordService)(nil)
	_ security.PasswordVerifier = (*BcryptPasswordService)(nil)
)
