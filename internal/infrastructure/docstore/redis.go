package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(addr, password string, db int) *RedisClient {
	return &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 5,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (r *RedisClient) Connect(ctx context.Context) error {
	log.Info().Str("addr", r.Client.Options().Addr).Msg("[REDIS] Connecting to Redis...")

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Info().Msg("[REDIS] Connected successfully")
	return nil
}

func (r *RedisClient) HealthCheck(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}

func (r *RedisClient) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// RedisCollection stores each document as a JSON string under
// "<prefix>:<name>:<id>" and keeps insertion order in the sorted set
// "<prefix>:<name>:ids", scored by a per-collection sequence.
type RedisCollection[T any] struct {
	rdb    redis.UniversalClient
	prefix string
}

var _ Collection[struct{}] = (*RedisCollection[struct{}])(nil)

func NewRedisCollection[T any](rdb redis.UniversalClient, prefix, name string) *RedisCollection[T] {
	return &RedisCollection[T]{rdb: rdb, prefix: prefix + ":" + name}
}

func (r *RedisCollection[T]) docKey(id string) string { return r.prefix + ":" + id }
func (r *RedisCollection[T]) indexKey() string       { return r.prefix + ":ids" }
func (r *RedisCollection[T]) seqKey() string         { return r.prefix + ":seq" }

func (r *RedisCollection[T]) FindByID(ctx context.Context, id string) (T, error) {
	var doc T

	raw, err := r.rdb.Get(ctx, r.docKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return doc, ErrNotFound
		}
		return doc, fmt.Errorf("redis get %s: %w", id, err)
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode document %s: %w", id, err)
	}
	return doc, nil
}

func (r *RedisCollection[T]) Find(ctx context.Context, filter Filter[T]) ([]T, error) {
	ids, err := r.rdb.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis zrange: %w", err)
	}
	if len(ids) == 0 {
		return []T{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}

	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	out := make([]T, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// index entry without a document: removed between the two reads
			continue
		}
		var doc T
		if err := json.Unmarshal([]byte(s), &doc); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", ids[i], err)
		}
		if filter.match(doc) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (r *RedisCollection[T]) Insert(ctx context.Context, id string, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", id, err)
	}

	seq, err := r.rdb.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("redis incr: %w", err)
	}

	// The document and its index entry commit together. ZADD NX keeps the
	// position of an id that already exists.
	var created *redis.BoolCmd
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		created = pipe.SetNX(ctx, r.docKey(id), raw, 0)
		pipe.ZAddNX(ctx, r.indexKey(), redis.Z{Score: float64(seq), Member: id})
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis insert %s: %w", id, err)
	}
	if !created.Val() {
		return fmt.Errorf("document %s already exists", id)
	}
	return nil
}

func (r *RedisCollection[T]) Replace(ctx context.Context, id string, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", id, err)
	}

	replaced, err := r.rdb.SetXX(ctx, r.docKey(id), raw, 0).Result()
	if err != nil {
		return fmt.Errorf("redis setxx %s: %w", id, err)
	}
	if !replaced {
		return ErrNotFound
	}
	return nil
}

func (r *RedisCollection[T]) Remove(ctx context.Context, id string) (bool, error) {
	var del *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.docKey(id))
		pipe.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis remove %s: %w", id, err)
	}
	return del.Val() > 0, nil
}
