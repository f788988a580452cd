package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hbs/src/config"
	"hbs/src/pricing"

	"github.com/redis/go-redis/v9"
)

// Store is the session-scoped draft cache. Reads of a missing key return
// (nil, nil); writes are last-write-wins.
type Store interface {
	GetDraft(ctx context.Context, sessionID string) (*Draft, error)
	SetDraft(ctx context.Context, sessionID string, draft *Draft) error
	GetSummary(ctx context.Context, sessionID string) (*pricing.Summary, error)
	SetSummary(ctx context.Context, sessionID string, summary *pricing.Summary) error
	DeleteDraft(ctx context.Context, sessionID string) error
}

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: config.DRAFT_TTL_HOURS * time.Hour}
}

func draftKey(sessionID string) string {
	return fmt.Sprintf("draft:%s", sessionID)
}

func summaryKey(sessionID string) string {
	return fmt.Sprintf("draft:%s:summary", sessionID)
}

func (s *RedisStore) GetDraft(ctx context.Context, sessionID string) (*Draft, error) {
	val, err := s.rdb.Get(ctx, draftKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var draft Draft
	if err := json.Unmarshal([]byte(val), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisStore) SetDraft(ctx context.Context, sessionID string, draft *Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(sessionID), data, s.ttl).Err()
}

// GetSummary serves summary-display reads without recomputing from raw
// selections. The summary is always re-derivable from the draft, so a cache
// miss is not an error.
func (s *RedisStore) GetSummary(ctx context.Context, sessionID string) (*pricing.Summary, error) {
	val, err := s.rdb.Get(ctx, summaryKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary pricing.Summary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *RedisStore) SetSummary(ctx context.Context, sessionID string, summary *pricing.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, summaryKey(sessionID), data, s.ttl).Err()
}

func (s *RedisStore) DeleteDraft(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, draftKey(sessionID), summaryKey(sessionID)).Err()
}
