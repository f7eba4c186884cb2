package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/entity"
	"ferroblog/internal/domain/repository"
	"ferroblog/internal/domain/valueobject"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, u.ID, u.Email.String(), u.PasswordHash.String(), u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domainerr.AlreadyExists("user with this email already exists")
		}
		return domainerr.Infra("saving user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email.String())
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var (
		id        uuid.UUID
		email     string
		hash      string
		createdAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &email, &hash, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerr.Infra("querying user", err)
	}
	return hydrateUser(id, email, hash, createdAt)
}

func hydrateUser(id uuid.UUID, email, hash string, createdAt time.Time) (*entity.User, error) {
	addr, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, domainerr.Infra("invalid email in storage", err)
	}
	return &entity.User{
		ID:           id,
		Email:        addr,
		PasswordHash: valueobject.NewPasswordHash(hash),
		CreatedAt:    createdAt,
	}, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
