package pacing

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"

	apperrors "novel-writer/pkg/errors"
	"novel-writer/pkg/tracer"
)

const defaultPollInterval = 500 * time.Millisecond

// RedisPacer 滑动窗口限速器：窗口内调用数达到上限时阻塞轮询，直到有配额释放。
// 多个进程共享同一 key 时可共同约束对同一生成服务的调用频率。
type RedisPacer struct {
	rdb    *redis.Client
	key    string
	limit  int
	window time.Duration
	poll   time.Duration
}

func NewRedisPacer(rdb *redis.Client, key string, limit int, window time.Duration, poll time.Duration) *RedisPacer {
	if poll <= 0 {
		poll = defaultPollInterval
	}
	return &RedisPacer{
		rdb:    rdb,
		key:    key,
		limit:  limit,
		window: window,
		poll:   poll,
	}
}

// Wait 阻塞直到窗口内出现配额或 ctx 取消
func (p *RedisPacer) Wait(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "pacing.Wait")
	span.SetAttributes(
		attribute.String("pacing.key", p.key),
		attribute.Int("pacing.limit", p.limit),
		attribute.Int64("pacing.window_ms", p.window.Milliseconds()),
	)
	defer span.End()

	for {
		ok, err := p.allow(ctx)
		if err != nil {
			span.RecordError(err)
			return apperrors.Wrap(err, apperrors.CodeCacheError, "pacing check failed")
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.poll):
		}
	}
}

// allow 滑动窗口检查（ZSET 实现）：移除窗口外记录后比较计数
func (p *RedisPacer) allow(ctx context.Context) (bool, error) {
	now := time.Now().UnixMilli()
	windowStart := now - p.window.Milliseconds()

	pipe := p.rdb.Pipeline()
	pipe.ZRemRangeByScore(ctx, p.key, "0", fmt.Sprintf("%d", windowStart))
	countCmd := pipe.ZCard(ctx, p.key)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if countCmd.Val() >= int64(p.limit) {
		return false, nil
	}

	p.rdb.ZAdd(ctx, p.key, redis.Z{
		Score:  float64(now),
		Member: fmt.Sprintf("%d", now),
	})
	p.rdb.Expire(ctx, p.key, p.window*2)
	return true, nil
}
