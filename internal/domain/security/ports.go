package security

import (
	"context"

	"github.com/google/uuid"

	"ferroblog/internal/domain/valueobject"
)

// Claims is the decoded payload of an authentication token.
type Claims struct {
	Sub   string
	Email string
	Iat   int64
	Exp   int64
}

// PasswordHasher hashes a plain password. Hashing is CPU-bound, so the call
// takes a context like any other port that may block.
type PasswordHasher interface {
	Hash(ctx context.Context, plain valueobject.PlainPassword) (valueobject.PasswordHash, error)
}

// PasswordVerifier checks a plain password against a stored hash. A mismatch
// is (false, nil); only an unparseable hash is an error.
type PasswordVerifier interface {
	Verify(plain, hash string) (bool, error)
}

// TokenIssuer produces a signed, self-contained credential for a user.
type TokenIssuer interface {
	Generate(userID uuid.UUID, email string) (string, error)
}

// TokenVerifier decodes and checks a token. Malformed, expired and
// badly-signed tokens all collapse to a single infra error; the transport
// layer treats any failure as an authentication reject.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}
