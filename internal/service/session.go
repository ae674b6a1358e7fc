package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore tracks which token sessions are still live. Tokens whose
// session has been revoked fail validation even before they expire, which
// is what makes logout and account deletion effective immediately.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID uuid.UUID, ttl time.Duration) error
	Valid(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

// RedisSessionStore stores sessions in Redis with the token's lifetime as
// TTL, plus a per-user set so RevokeAll can find them.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func userSessionsKey(userID uuid.UUID) string {
	return "user_sessions:" + userID.String()
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, userID uuid.UUID, ttl time.Duration) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, sessionKey(sessionID), userID.String(), ttl)
	pipe.SAdd(ctx, userSessionsKey(userID), sessionID)
	pipe.Expire(ctx, userSessionsKey(userID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Valid(ctx context.Context, sessionID string) (bool, error) {
	_, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return true, nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, sessionID string) error {
	userID, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	if userID != "" {
		pipe.SRem(ctx, "user_sessions:"+userID, sessionID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	sessionIDs, err := s.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	pipe := s.client.Pipeline()
	for _, id := range sessionIDs {
		pipe.Del(ctx, sessionKey(id))
	}
	pipe.Del(ctx, userSessionsKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	return nil
}

// MemorySessionStore is an in-process SessionStore used in tests and when
// no Redis instance is configured.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]uuid.UUID
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]uuid.UUID)}
}

func (s *MemorySessionStore) Save(ctx context.Context, sessionID string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = userID
	return nil
}

func (s *MemorySessionStore) Valid(ctx context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[sessionID]
	return ok, nil
}

func (s *MemorySessionStore) Revoke(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemorySessionStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, uid := range s.sessions {
		if uid == userID {
			delete(s.sessions, id)
		}
	}
	return nil
}
