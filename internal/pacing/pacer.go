// Package pacing 提供任务间限速能力，约束对生成能力的调用频率
package pacing

import (
	"context"
	"time"
)

// Pacer 在每个任务执行前调用，阻塞直到允许继续或 ctx 取消
type Pacer interface {
	Wait(ctx context.Context) error
}

// FixedIntervalPacer 固定间隔限速：每次 Wait 阻塞固定时长
type FixedIntervalPacer struct {
	interval time.Duration
}

func NewFixedIntervalPacer(interval time.Duration) *FixedIntervalPacer {
	return &FixedIntervalPacer{interval: interval}
}

// Wait 阻塞 interval 时长；ctx 取消时提前返回其错误
func (p *FixedIntervalPacer) Wait(ctx context.Context) error {
	if p.interval <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NopPacer 不限速
type NopPacer struct{}

func (NopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
