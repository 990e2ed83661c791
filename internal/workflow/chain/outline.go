// Package chain 将提示节点树组装为可调用的生成流水线
package chain

import (
	"context"
	"strings"

	wfmodel "novel-writer/internal/workflow/model"
	wfnode "novel-writer/internal/workflow/node"
	"novel-writer/internal/workflow/port"
	workflowprompt "novel-writer/internal/workflow/prompt"
	apperrors "novel-writer/pkg/errors"
)

var promptRegistry = workflowprompt.NewRegistry()

// OutlineChain 大纲流水线：先写故事基本结构，再据此写章节目录。
// 两个叶子节点顺序串联，结构输出作为目录节点的输入。
type OutlineChain struct {
	generator port.TextGenerator
}

func NewOutlineChain(generator port.TextGenerator) *OutlineChain {
	return &OutlineChain{generator: generator}
}

// Invoke 运行流水线，返回最后一个节点的原始输出（目录的结构化文本）
func (c *OutlineChain) Invoke(ctx context.Context, in *wfmodel.OutlineGenerateInput) (string, error) {
	if c == nil || c.generator == nil {
		return "", apperrors.New(apperrors.CodeInvalidParam, "text generator not configured")
	}
	if in == nil {
		return "", apperrors.New(apperrors.CodeInvalidParam, "input is nil")
	}
	if strings.TrimSpace(in.Topic) == "" {
		return "", apperrors.New(apperrors.CodeInvalidParam, "topic is required")
	}
	if strings.TrimSpace(in.Language) == "" {
		return "", apperrors.New(apperrors.CodeInvalidParam, "language is required")
	}

	structInstr, err := promptRegistry.Text(workflowprompt.PromptStoryStructV1)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternalError, "load story struct prompt")
	}
	directoryInstr, err := promptRegistry.Text(workflowprompt.PromptChapterDirectoryV1)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternalError, "load chapter directory prompt")
	}
	topicContext, err := promptRegistry.Render(workflowprompt.PromptOutlineTopicV1, map[string]string{
		"topic":    strings.TrimSpace(in.Topic),
		"language": strings.TrimSpace(in.Language),
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternalError, "render outline topic prompt")
	}

	root := wfnode.NewSequential("outline_write",
		wfnode.NewLeaf("struct_write", structInstr),
		wfnode.NewLeaf("directory_write", directoryInstr),
	)
	if err := root.Fill(ctx, topicContext, c.generator); err != nil {
		return "", err
	}
	return root.Content, nil
}
