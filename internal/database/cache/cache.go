// Package cache keeps users looked up by email in Redis in front of the
// primary database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"contacts/internal/database"
	"contacts/internal/lib/logger/sl"
)

const keyPrefix = "user:"

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --name=UserStorage
type UserStorage interface {
	SaveUser(ctx context.Context, email, passwordHash string) (database.User, error)
	UserByEmail(ctx context.Context, email string) (database.User, error)
	VerifyUser(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	UpdateAvatar(ctx context.Context, email, avatarURL string) error
}

// Users serves UserByEmail from Redis and drops the entry on every change.
// Redis failures are logged and fall through to the database.
type Users struct {
	UserStorage

	log    *slog.Logger
	client redis.UniversalClient
	ttl    time.Duration
}

func New(log *slog.Logger, next UserStorage, client redis.UniversalClient, ttl time.Duration) *Users {
	return &Users{UserStorage: next, log: log, client: client, ttl: ttl}
}

func (u *Users) UserByEmail(ctx context.Context, email string) (database.User, error) {
	const op = "database.cache.UserByEmail"

	log := u.log.With(slog.String("op", op))

	data, err := u.client.Get(ctx, keyPrefix+email).Bytes()
	if err == nil {
		var user database.User
		if err := json.Unmarshal(data, &user); err == nil {
			return user, nil
		}
		log.Warn("Dropping unreadable cache entry", slog.String("email", email))
	} else if !errors.Is(err, redis.Nil) {
		log.Warn("Failed to read cache", sl.Err(err))
	}

	user, err := u.UserStorage.UserByEmail(ctx, email)
	if err != nil {
		return database.User{}, err
	}

	data, err = json.Marshal(user)
	if err != nil {
		return database.User{}, fmt.Errorf("%s: Encoding user error: %w", op, err)
	}

	if err := u.client.Set(ctx, keyPrefix+email, data, u.ttl).Err(); err != nil {
		log.Warn("Failed to write cache", sl.Err(err))
	}

	return user, nil
}

func (u *Users) VerifyUser(ctx context.Context, email string) error {
	defer u.forget(ctx, email)
	return u.UserStorage.VerifyUser(ctx, email)
}

func (u *Users) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	defer u.forget(ctx, email)
	return u.UserStorage.UpdatePassword(ctx, email, passwordHash)
}

func (u *Users) UpdateAvatar(ctx context.Context, email, avatarURL string) error {
	defer u.forget(ctx, email)
	return u.UserStorage.UpdateAvatar(ctx, email, avatarURL)
}

func (u *Users) forget(ctx context.Context, email string) {
	if err := u.client.Del(ctx, keyPrefix+email).Err(); err != nil {
		u.log.Warn("Failed to drop cache entry", slog.String("op", "database.cache.forget"), sl.Err(err))
	}
}
