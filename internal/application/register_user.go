package application

import (
	"context"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/entity"
	"ferroblog/internal/domain/repository"
	"ferroblog/internal/domain/security"
	"ferroblog/internal/domain/valueobject"
)

// RegisterUser creates an account and issues a token for it.
type RegisterUser struct {
	users  repository.UserRepository
	hasher security.PasswordHasher
	tokens security.TokenIssuer
}

func NewRegisterUser(users repository.UserRepository, hasher security.PasswordHasher, tokens security.TokenIssuer) *RegisterUser {
	return &RegisterUser{users: users, hasher: hasher, tokens: tokens}
}

func (uc *RegisterUser) Execute(ctx context.Context, email, password string) (*AuthResponse, error) {
	addr, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}

	// Advisory fast path only; the unique constraint on users.email is the
	// real guard, so Save below can still come back with AlreadyExists.
	existing, err := uc.users.FindByEmail(ctx, addr)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerr.AlreadyExists("user with this email already exists")
	}

	plain, err := valueobject.NewPlainPassword(password)
	if err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(ctx, plain)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(addr, hash)
	if err := uc.users.Save(ctx, user); err != nil {
		return nil, err
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
