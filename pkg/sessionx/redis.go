package sessionx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKeyPrefix namespaces session keys in a shared redis.
const DefaultRedisKeyPrefix = "todo:session:"

// RedisStore keeps records as JSON strings. Each write resets the key TTL to
// the record's MaxInactive so redis evicts idle sessions itself.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Record, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("redis get session: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, fmt.Errorf("decode session: %w", err)
	}
	return rec.clone(), nil
}

func (s *RedisStore) Save(ctx context.Context, key string, rec Record) error {
	raw, ttl, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.prefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// touchRetries bounds optimistic retries when another writer changes the
// key between WATCH and EXEC.
const touchRetries = 3

// Touch rewrites the record under WATCH with SET XX, so a key deleted by a
// concurrent logout stays deleted.
func (s *RedisStore) Touch(ctx context.Context, key string, at time.Time) (Record, error) {
	rkey := s.prefix + key

	for range touchRetries {
		var rec Record
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			raw, err := tx.Get(ctx, rkey).Bytes()
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			if err != nil {
				return fmt.Errorf("redis get session: %w", err)
			}
			if err := json.Unmarshal(raw, &rec); err != nil {
				return fmt.Errorf("decode session: %w", err)
			}
			if rec.Expired(at) {
				return ErrNotFound
			}

			rec.LastAccessedAt = at
			out, ttl, err := encodeRecord(rec)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.SetXX(ctx, rkey, out, ttl)
				return nil
			})
			return err
		}, rkey)

		switch {
		case errors.Is(err, redis.TxFailedErr):
			continue
		case err != nil:
			return Record{}, err
		}
		return rec.clone(), nil
	}
	return Record{}, fmt.Errorf("redis touch session: %w", redis.TxFailedErr)
}

func encodeRecord(rec Record) ([]byte, time.Duration, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, 0, fmt.Errorf("encode session: %w", err)
	}
	return raw, max(rec.MaxInactive, 0), nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op, redis expires keys on its own.
func (s *RedisStore) DeleteExpired(context.Context) (int, error) { return 0, nil }

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
