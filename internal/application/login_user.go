package application

import (
	"context"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/repository"
	"ferroblog/internal/domain/security"
	"ferroblog/internal/domain/valueobject"
)

// LoginUser authenticates an email/password pair and issues a token.
//
// The failure taxonomy is kept coarse on purpose: an unknown email is
// NotFound, a wrong password is Validation("invalid credentials"). Clients
// depend on these kinds, so do not reclassify them.
type LoginUser struct {
	users    repository.UserRepository
	verifier security.PasswordVerifier
	tokens   security.TokenIssuer
}

func NewLoginUser(users repository.UserRepository, verifier security.PasswordVerifier, tokens security.TokenIssuer) *LoginUser {
	return &LoginUser{users: users, verifier: verifier, tokens: tokens}
}

func (uc *LoginUser) Execute(ctx context.Context, email, password string) (*AuthResponse, error) {
	addr, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}

	user, err := uc.users.FindByEmail(ctx, addr)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerr.NotFound("user not found")
	}

	ok, err := uc.verifier.Verify(password, user.PasswordHash.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domainerr.Validation("invalid credentials")
	}

	token, err := uc.tokens.Generate(user.ID, user.Email.String())
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		UserID: user.ID.String(),
		Email:  user.Email.String(),
		Token:  token,
	}, nil
}
