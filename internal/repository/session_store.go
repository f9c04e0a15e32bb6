package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Principal is the identity attached to an authenticated request.
type Principal struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Rol      string `json:"rol"`
}

// ErrSessionNotFound is returned for unknown or expired session tokens.
var ErrSessionNotFound = errors.New("sesión no encontrada")

const sessionKeyPrefix = "sesion:"

// SessionStore issues and resolves opaque server-side session tokens.
// Expiry is delegated to the store's TTL; logout deletes the entry, which
// immediately invalidates the cookie held by the client.
type SessionStore interface {
	Create(ctx context.Context, p Principal, ttl time.Duration) (string, error)
	Get(ctx context.Context, token string) (*Principal, error)
	Delete(ctx context.Context, token string) error
}

type redisSessionStore struct{ rdb *redis.Client }

func NewSessionStore(rdb *redis.Client) SessionStore { return &redisSessionStore{rdb: rdb} }

func (s *redisSessionStore) Create(ctx context.Context, p Principal, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	payload, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+token, payload, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisSessionStore) Get(ctx context.Context, token string) (*Principal, error) {
	payload, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var p Principal
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+token).Err()
}
