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

// ChapterChain 章节流水线：单个叶子节点，上下文携带上一章末尾与本章概况。
// 目录概况可以为空：目录校验只保证章节标题非空，空概况照常续写。
type ChapterChain struct {
	generator port.TextGenerator
}

func NewChapterChain(generator port.TextGenerator) *ChapterChain {
	return &ChapterChain{generator: generator}
}

// Invoke 运行流水线，返回生成的章节正文原始文本
func (c *ChapterChain) Invoke(ctx context.Context, in *wfmodel.ChapterGenerateInput) (string, error) {
	if c == nil || c.generator == nil {
		return "", apperrors.New(apperrors.CodeInvalidParam, "text generator not configured")
	}
	if in == nil {
		return "", apperrors.New(apperrors.CodeInvalidParam, "input is nil")
	}
	if strings.TrimSpace(in.Heading) == "" {
		return "", apperrors.New(apperrors.CodeInvalidParam, "chapter heading is required")
	}

	contentInstr, err := promptRegistry.Text(workflowprompt.PromptChapterContentV1)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternalError, "load chapter content prompt")
	}
	chapterContext, err := promptRegistry.Render(workflowprompt.PromptChapterContextV1, map[string]string{
		"summary":  strings.TrimSpace(in.Summary),
		"previous": in.PreviousContext,
		"language": strings.TrimSpace(in.Language),
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternalError, "render chapter context prompt")
	}

	root := wfnode.NewSequential("content_write",
		wfnode.NewLeaf("story_write", contentInstr),
	)
	if err := root.Fill(ctx, chapterContext, c.generator); err != nil {
		return "", err
	}
	return root.Content, nil
}
