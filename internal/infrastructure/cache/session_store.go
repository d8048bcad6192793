package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Session is the server-side state kept for an authenticated user. The
// tenant ID stamped at login is what downstream request handling uses to
// build its tenant filter.
type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore keeps sessions in Redis so multiple instances share login
// state
type SessionStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewSessionStore creates a session store and verifies the connection
func NewSessionStore(redisCfg *config.RedisConfig, sessionCfg *config.SessionConfig) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr(),
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SessionStore{
		client:    client,
		keyPrefix: sessionCfg.Prefix + ":",
		ttl:       sessionCfg.TTL,
	}, nil
}

// NewSessionStoreWithClient creates a store with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewSessionStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *SessionStore {
	if keyPrefix == "" {
		keyPrefix = "session:"
	}
	return &SessionStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Put stores a session under the given ID with the configured TTL
func (s *SessionStore) Put(ctx context.Context, sessionID string, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.keyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get fetches a session and refreshes its TTL. A missing or expired
// session surfaces as ErrNotFound.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	key := s.keyPrefix + sessionID
	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	// Sliding expiry; a failure here only shortens the session
	_ = s.client.Expire(ctx, key, s.ttl).Err()

	return &session, nil
}

// Delete removes a session. Deleting an absent session is a no-op.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (s *SessionStore) Close() error {
	return s.client.Close()
}
