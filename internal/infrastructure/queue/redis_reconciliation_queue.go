package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const deadLetterSuffix = ":dead"

// RedisAPI is the subset of go-redis commands the queue relies on.
type RedisAPI interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	RPop(ctx context.Context, key string) *redis.StringCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
	LLen(ctx context.Context, key string) *redis.IntCmd
}

var _ RedisAPI = (*redis.Client)(nil)

// RedisReconciliationQueue is a FIFO list: producers LPUSH, the worker BRPOPs.
// Tasks that ran out of attempts move to "<key>:dead".
type RedisReconciliationQueue struct {
	client RedisAPI
	key    string
}

var _ interfaces.IReconciliationQueue = (*RedisReconciliationQueue)(nil)

// NewRedisClient connects and pings, the same way the idempotency store does.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewRedisReconciliationQueue(client RedisAPI, key string) *RedisReconciliationQueue {
	if key == "" {
		key = "nfe:reconcile"
	}
	return &RedisReconciliationQueue{client: client, key: key}
}

func (q *RedisReconciliationQueue) Enqueue(ctx context.Context, task interfaces.ReconciliationTask) error {
	return q.push(ctx, q.key, task)
}

// Dequeue waits up to wait for a task. A non-positive wait polls once.
func (q *RedisReconciliationQueue) Dequeue(ctx context.Context, wait time.Duration) (interfaces.ReconciliationTask, bool, error) {
	var raw string
	if wait <= 0 {
		v, err := q.client.RPop(ctx, q.key).Result()
		if errors.Is(err, redis.Nil) {
			return interfaces.ReconciliationTask{}, false, nil
		}
		if err != nil {
			return interfaces.ReconciliationTask{}, false, fmt.Errorf("failed to pop reconciliation task: %w", err)
		}
		raw = v
	} else {
		res, err := q.client.BRPop(ctx, wait, q.key).Result()
		if errors.Is(err, redis.Nil) {
			return interfaces.ReconciliationTask{}, false, nil
		}
		if err != nil {
			return interfaces.ReconciliationTask{}, false, fmt.Errorf("failed to pop reconciliation task: %w", err)
		}
		// BRPOP answers [key, value].
		if len(res) != 2 {
			return interfaces.ReconciliationTask{}, false, fmt.Errorf("unexpected BRPOP reply of %d elements", len(res))
		}
		raw = res[1]
	}

	var task interfaces.ReconciliationTask
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		// An unreadable payload can never succeed; park it instead of looping on it.
		_ = q.client.LPush(ctx, q.key+deadLetterSuffix, raw).Err()
		return interfaces.ReconciliationTask{}, false, fmt.Errorf("failed to decode reconciliation task: %w", err)
	}
	return task, true, nil
}

func (q *RedisReconciliationQueue) DeadLetter(ctx context.Context, task interfaces.ReconciliationTask) error {
	return q.push(ctx, q.key+deadLetterSuffix, task)
}

// Depth returns the number of pending and dead-lettered tasks.
func (q *RedisReconciliationQueue) Depth(ctx context.Context) (pending, dead int64, err error) {
	if pending, err = q.client.LLen(ctx, q.key).Result(); err != nil {
		return 0, 0, err
	}
	if dead, err = q.client.LLen(ctx, q.key+deadLetterSuffix).Result(); err != nil {
		return 0, 0, err
	}
	return pending, dead, nil
}

func (q *RedisReconciliationQueue) push(ctx context.Context, key string, task interfaces.ReconciliationTask) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.EnqueuedAt.IsZero() {
		task.EnqueuedAt = time.Now().UTC()
	}
	b, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to encode reconciliation task: %w", err)
	}
	if err := q.client.LPush(ctx, key, string(b)).Err(); err != nil {
		return fmt.Errorf("failed to push reconciliation task: %w", err)
	}
	return nil
}
