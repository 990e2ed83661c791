// Package chapter 负责单章内容生成与重试策略
package chapter

import (
	"context"

	workflowchain "novel-writer/internal/workflow/chain"
	wfmodel "novel-writer/internal/workflow/model"
	wfnode "novel-writer/internal/workflow/node"
	"novel-writer/internal/workflow/port"
	apperrors "novel-writer/pkg/errors"
	"novel-writer/pkg/logger"
	"novel-writer/pkg/metrics"
	"novel-writer/pkg/tracer"
)

// DefaultMaxAttempts 单章默认最多生成次数
const DefaultMaxAttempts = 5

type Generator struct {
	chain       *workflowchain.ChapterChain
	maxAttempts int
}

func NewGenerator(gen port.TextGenerator, maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		chain:       workflowchain.NewChapterChain(gen),
		maxAttempts: maxAttempts,
	}
}

// Generate 生成一章内容。
// 重试策略：任一拒答标记命中即丢弃本次结果重试，最多 maxAttempts 次；
// 次数用尽后接受最后一次结果（尽力而为，不作硬性失败）。
// 生成能力本身的错误（网络/超时等）不参与重试，直接上抛。
func (g *Generator) Generate(ctx context.Context, in *wfmodel.ChapterGenerateInput) (*wfmodel.ChapterGenerateOutput, error) {
	if g == nil || g.chain == nil {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "chapter workflow not configured")
	}
	if in == nil {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "input is nil")
	}

	ctx, span := tracer.Start(ctx, "chapter.Generate")
	defer span.End()
	ctx = logger.WithContext(ctx, logger.ChapterKey, in.Heading)

	var body string
	attempts := 0
	for attempts < g.maxAttempts {
		raw, err := g.chain.Invoke(ctx, in)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		attempts++
		body = raw

		if !wfnode.HasRefusalMarker(body) {
			break
		}
		metrics.ChapterRetriesTotal.Inc()
		logger.Warn(ctx, "refusal marker detected, retrying",
			"attempt", attempts,
			"max_attempts", g.maxAttempts,
		)
	}
	if wfnode.HasRefusalMarker(body) {
		// 次数用尽仍带拒答标记：记录但仍然接受
		logger.Warn(ctx, "refusal marker still present after final attempt, accepting best-effort result",
			"attempts", attempts,
		)
	}

	return &wfmodel.ChapterGenerateOutput{
		Heading:  in.Heading,
		Body:     body,
		Attempts: attempts,
	}, nil
}
