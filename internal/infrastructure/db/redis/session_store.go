package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

// sessionRecord is the stored form of a session. Unlike domain.Session it
// serialises the upstream token.
type sessionRecord struct {
	ID         string              `json:"id"`
	Token      string              `json:"token"`
	Role       string              `json:"role"`
	Profile    *domain.UserProfile `json:"profile,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	LastSeenAt time.Time           `json:"last_seen_at"`
}

func encodeSession(s *domain.Session) ([]byte, error) {
	return json.Marshal(sessionRecord{
		ID:         s.ID,
		Token:      s.Token,
		Role:       string(s.RoleValue),
		Profile:    s.Profile,
		CreatedAt:  s.CreatedAt,
		LastSeenAt: s.LastSeenAt,
	})
}

func decodeSession(raw []byte) (*domain.Session, error) {
	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &domain.Session{
		ID:         rec.ID,
		Token:      rec.Token,
		RoleValue:  domain.ParseRole(rec.Role),
		Profile:    rec.Profile,
		CreatedAt:  rec.CreatedAt,
		LastSeenAt: rec.LastSeenAt,
	}, nil
}

// SessionStore keeps browser sessions in Redis with an idle TTL.
// Key format: session:<id>
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error {
	raw, err := encodeSession(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(sess.ID), raw, ttl).Err()
}

// Get loads a session and slides its expiry forward.
func (s *SessionStore) Get(ctx context.Context, id string, ttl time.Duration) (*domain.Session, error) {
	raw, err := s.client.GetEx(ctx, sessionKey(id), ttl).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("session get: %w", err)
	}
	sess, err := decodeSession(raw)
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	sess.LastSeenAt = time.Now().UTC()
	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

func sessionKey(id string) string {
	return "session:" + id
}
