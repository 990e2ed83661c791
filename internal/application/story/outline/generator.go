// Package outline 负责大纲生成与解析
package outline

import (
	"context"

	workflowchain "novel-writer/internal/workflow/chain"
	wfmodel "novel-writer/internal/workflow/model"
	"novel-writer/internal/workflow/port"
	"novel-writer/pkg/logger"
	"novel-writer/pkg/tracer"
)

type Generator struct {
	chain *workflowchain.OutlineChain
}

func NewGenerator(gen port.TextGenerator) *Generator {
	return &Generator{
		chain: workflowchain.NewOutlineChain(gen),
	}
}

// Generate 运行大纲流水线并解析为结构化大纲。
// 解析失败为致命错误：章节任务全部派生自目录，没有有效目录就没有后续。
func (g *Generator) Generate(ctx context.Context, in *wfmodel.OutlineGenerateInput) (*wfmodel.Outline, error) {
	ctx, span := tracer.Start(ctx, "outline.Generate")
	defer span.End()

	raw, err := g.chain.Invoke(ctx, in)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	o, err := ParseOutline(raw)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := ValidateOutline(o); err != nil {
		span.RecordError(err)
		return nil, err
	}

	logger.Info(ctx, "outline generated",
		"title", o.Title,
		"chapters", len(o.Directory),
	)
	return o, nil
}
