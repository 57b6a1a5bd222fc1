package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/venstudio/studio-backend/internal/domain"
)

const (
	userTable = "users"
	userCols  = "id, email, password, full_name, role, permissions"
)

// UserRepository provides persistence operations for operator accounts.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	id          string
	email       string
	password    string
	fullName    string
	role        string
	permissions []byte
}

func userRowFrom(u domain.User) (userRow, error) {
	r := userRow{
		id:       u.ID,
		email:    u.Email,
		password: u.Password,
		fullName: u.FullName,
		role:     string(u.Role),
	}
	var err error
	if r.permissions, err = jsonb("permissions", u.Permissions); err != nil {
		return userRow{}, err
	}
	return r, nil
}

func (r userRow) toDomain() (domain.User, error) {
	role, err := domain.ParseUserRole(r.role)
	if err != nil {
		return domain.User{}, err
	}
	perms := []string{}
	if err := fromJSONB("permissions", r.permissions, &perms); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:          r.id,
		Email:       r.email,
		Password:    r.password,
		FullName:    r.fullName,
		Role:        role,
		Permissions: perms,
	}, nil
}

func scanUser(s scanner) (domain.User, error) {
	var r userRow
	if err := s.Scan(&r.id, &r.email, &r.password, &r.fullName, &r.role, &r.permissions); err != nil {
		return domain.User{}, err
	}
	return r.toDomain()
}

func (repo *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	q := "SELECT " + userCols + " FROM users ORDER BY created_at DESC"
	return queryList(ctx, repo.db, userTable, q, scanUser)
}

// GetByCredentials backs sign-in: the users table is the only identity
// source, matched on email and stored password.
func (repo *UserRepository) GetByCredentials(ctx context.Context, email, password string) (domain.User, error) {
	q := "SELECT " + userCols + " FROM users WHERE email = $1 AND password = $2"
	u, err := scanUser(repo.db.QueryRowContext(ctx, q, email, password))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("get user by credentials: %w", err)
	}
	return u, nil
}

func (repo *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r, err := userRowFrom(u)
	if err != nil {
		return domain.User{}, err
	}
	const q = `
INSERT INTO users (email, password, full_name, role, permissions)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userCols
	args := []any{r.email, r.password, r.fullName, r.role, r.permissions}
	return insertOne(ctx, repo.db, userTable, q, args, scanUser)
}

func userSets(u domain.UserUpdate) (map[string]any, error) {
	sets := map[string]any{}
	if u.Email != nil {
		sets["email"] = *u.Email
	}
	if u.Password != nil {
		sets["password"] = *u.Password
	}
	if u.FullName != nil {
		sets["full_name"] = *u.FullName
	}
	if u.Role != nil {
		sets["role"] = string(*u.Role)
	}
	if u.Permissions != nil {
		b, err := jsonb("permissions", *u.Permissions)
		if err != nil {
			return nil, err
		}
		sets["permissions"] = b
	}
	return sets, nil
}

func (repo *UserRepository) Update(ctx context.Context, id string, u domain.UserUpdate) (domain.User, error) {
	sets, err := userSets(u)
	if err != nil {
		return domain.User{}, err
	}
	return updateOne(ctx, repo.db, userTable, id, sets, userCols, scanUser)
}

func (repo *UserRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.db, userTable, id)
}
