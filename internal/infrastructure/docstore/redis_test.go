package docstore

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRedis answers commands in process and records what was sent, one
// entry per round trip.
type scriptedRedis struct {
	mu       sync.Mutex
	sent     [][]string
	setnx    bool
	batchErr error
}

func (s *scriptedRedis) record(cmds []redis.Cmder) {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name()
	}
	s.mu.Lock()
	s.sent = append(s.sent, names)
	s.mu.Unlock()
}

func (s *scriptedRedis) answer(cmd redis.Cmder) {
	switch c := cmd.(type) {
	case *redis.BoolCmd:
		c.SetVal(s.setnx)
	case *redis.IntCmd:
		c.SetVal(1)
	}
}

func (s *scriptedRedis) DialHook(next redis.DialHook) redis.DialHook {
	return func(context.Context, string, string) (net.Conn, error) {
		return nil, errors.New("scripted client does not dial")
	}
}

func (s *scriptedRedis) ProcessHook(redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		s.record([]redis.Cmder{cmd})
		s.answer(cmd)
		return nil
	}
}

func (s *scriptedRedis) ProcessPipelineHook(redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(_ context.Context, cmds []redis.Cmder) error {
		s.record(cmds)
		if s.batchErr != nil {
			for _, c := range cmds {
				c.SetErr(s.batchErr)
			}
			return s.batchErr
		}
		for _, c := range cmds {
			s.answer(c)
		}
		return nil
	}
}

func newScriptedCollection(t *testing.T, script *scriptedRedis) *RedisCollection[note] {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	rdb.AddHook(script)
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisCollection[note](rdb, "test", "notes")
}

func TestRedisCollection_InsertCommitsDocumentAndIndexTogether(t *testing.T) {
	script := &scriptedRedis{setnx: true}
	c := newScriptedCollection(t, script)

	require.NoError(t, c.Insert(context.Background(), "a", note{ID: "a", Text: "first"}))

	assert.Equal(t, [][]string{
		{"incr"},
		{"multi", "setnx", "zadd", "exec"},
	}, script.sent)
}

func TestRedisCollection_InsertFailureLeavesNoHalfWrite(t *testing.T) {
	boom := errors.New("connection reset")
	script := &scriptedRedis{setnx: true, batchErr: boom}
	c := newScriptedCollection(t, script)

	err := c.Insert(context.Background(), "a", note{ID: "a"})
	assert.ErrorIs(t, err, boom)

	// nothing reaches the server outside the failed transaction
	require.Len(t, script.sent, 2)
	assert.Equal(t, []string{"incr"}, script.sent[0])
	assert.Contains(t, script.sent[1], "setnx")
	assert.Contains(t, script.sent[1], "zadd")
}

func TestRedisCollection_InsertDuplicate(t *testing.T) {
	script := &scriptedRedis{setnx: false}
	c := newScriptedCollection(t, script)

	err := c.Insert(context.Background(), "a", note{ID: "a"})
	assert.ErrorContains(t, err, "already exists")
}
