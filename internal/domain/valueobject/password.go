package valueobject

import "ferroblog/internal/domain/domainerr"

// PlainPassword is a plain-text password that exists only transiently during
// register/login. It is never persisted and deliberately has no String method
// so it cannot leak through formatting or logging by accident.
type PlainPassword struct {
	value string
}

func NewPlainPassword(raw string) (PlainPassword, error) {
	if len(raw) < 8 {
		return PlainPassword{}, domainerr.Validation("password must be at least 8 characters")
	}
	return PlainPassword{value: raw}, nil
}

// Raw exposes the plain text for hashing and verification only.
func (p PlainPassword) Raw() string { return p.value }

// PasswordHash is an opaque hashed password. It is produced by the password
// hasher or rehydrated from storage; no format validation happens here.
type PasswordHash struct {
	value string
}

func NewPasswordHash(hash string) PasswordHash {
	return PasswordHash{value: hash}
}

func (h PasswordHash) String() string { return h.value }
