package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultKey    = "signup:errors"
	DefaultMaxLen = 1000
)

type logEntry struct {
	ID        string    `json:"id"`
	Stack     string    `json:"stack"`
	CreatedAt time.Time `json:"createdAt"`
}

// LogErrorRepository pushes traces onto a capped Redis list, newest first.
type LogErrorRepository struct {
	client redis.Cmdable
	key    string
	maxLen int64
	now    func() time.Time
}

func NewLogErrorRepository(client redis.Cmdable, key string, maxLen int64) *LogErrorRepository {
	if key == "" {
		key = DefaultKey
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	return &LogErrorRepository{client: client, key: key, maxLen: maxLen, now: time.Now}
}

func (r *LogErrorRepository) LogError(ctx context.Context, trace string) error {
	payload, err := json.Marshal(logEntry{
		ID:        uuid.NewString(),
		Stack:     trace,
		CreatedAt: r.now().UTC(),
	})
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, r.key, payload)
		pipe.LTrim(ctx, r.key, 0, r.maxLen-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("push error log: %w", err)
	}
	return nil
}
