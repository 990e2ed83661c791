package llm

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"go.opentelemetry.io/otel/attribute"

	apperrors "novel-writer/pkg/errors"
	"novel-writer/pkg/metrics"
	"novel-writer/pkg/tracer"
)

// EinoGenerator 实现工作流层的 TextGenerator port：
// instruction 作为 system 消息，contextText 作为 user 消息，单次调用 ChatModel。
type EinoGenerator struct {
	factory  *EinoFactory
	provider string
}

func NewEinoGenerator(factory *EinoFactory, provider string) *EinoGenerator {
	return &EinoGenerator{
		factory:  factory,
		provider: provider,
	}
}

// Generate 调用一次文本生成
func (g *EinoGenerator) Generate(ctx context.Context, instruction string, contextText string) (string, error) {
	if g == nil || g.factory == nil {
		return "", apperrors.New(apperrors.CodeInvalidParam, "llm factory not configured")
	}

	ctx, span := tracer.Start(ctx, "llm.Generate")
	span.SetAttributes(attribute.String("llm.provider", g.provider))
	defer span.End()

	chatModel, err := g.factory.Get(ctx, g.provider)
	if err != nil {
		span.RecordError(err)
		return "", apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "failed to resolve chat model")
	}

	msgs := []*schema.Message{
		schema.SystemMessage(instruction),
		schema.UserMessage(contextText),
	}

	start := time.Now()
	outMsg, err := chatModel.Generate(ctx, msgs)
	metrics.LLMRequestDuration.WithLabelValues(g.provider).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(g.provider, "error").Inc()
		span.RecordError(err)
		return "", apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "llm generate failed")
	}
	metrics.LLMRequestsTotal.WithLabelValues(g.provider, "ok").Inc()

	if outMsg == nil || strings.TrimSpace(outMsg.Content) == "" {
		return "", apperrors.New(apperrors.CodeLLMCallFailed, "empty llm response")
	}
	return outMsg.Content, nil
}
