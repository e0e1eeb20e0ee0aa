package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tripreco/pkg/utils"
)

// Session scopes a user's parse and explanation caches. Sessions live in
// memory only; the scoped cache entries carry the same TTL and age out of
// the backing cache on their own after the session ends.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type StoreInterface interface {
	Create(ctx context.Context, userID string) (Session, string, error)
	Get(ctx context.Context, id string) (Session, error)
	End(ctx context.Context, id string) error
	ScopedCache(sessionID string) *ScopedCache
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]Session
	cache    Cache
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewStore(cache Cache, ttl time.Duration, logger zerolog.Logger) StoreInterface {
	return &Store{
		sessions: make(map[string]Session),
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// Create opens a session and mints its bearer token.
func (s *Store) Create(_ context.Context, userID string) (Session, string, error) {
	now := time.Now()
	sess := Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	token, err := utils.CreateSessionToken(sess.ID, userID, s.ttl)
	if err != nil {
		return Session{}, "", err
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Info().Str("session_id", sess.ID).Str("user_id", userID).Msg("session created")
	return sess, token, nil
}

func (s *Store) Get(_ context.Context, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, utils.ErrSessionNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, id)
		return Session{}, utils.ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) End(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return utils.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// ScopedCache returns a view of the backing cache namespaced to one
// session, so parses never leak between users.
func (s *Store) ScopedCache(sessionID string) *ScopedCache {
	return &ScopedCache{cache: s.cache, prefix: "sess::" + sessionID + "::", ttl: s.ttl}
}

// ScopedCache prefixes every key with the owning session id. Its Get/Set
// shape matches what the query extractor expects from a parse cache.
type ScopedCache struct {
	cache  Cache
	prefix string
	ttl    time.Duration
}

func (c *ScopedCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	return c.cache.Get(ctx, c.prefix+key, dst)
}

func (c *ScopedCache) Set(ctx context.Context, key string, v any) error {
	return c.cache.Set(ctx, c.prefix+key, v, c.ttl)
}

func (c *ScopedCache) Del(ctx context.Context, key string) error {
	return c.cache.Del(ctx, c.prefix+key)
}
