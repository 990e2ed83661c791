package port

import (
	"context"
)

// TextGenerator 定义工作流层对文本生成能力的最小依赖（port）。
// instruction 描述生成目标，contextText 提供本次生成的输入上下文。
type TextGenerator interface {
	Generate(ctx context.Context, instruction string, contextText string) (string, error)
}
