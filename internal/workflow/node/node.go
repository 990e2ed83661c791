// Package node 提供可组合的提示节点与顺序填充算法
package node

import (
	"context"

	"novel-writer/internal/workflow/port"
	apperrors "novel-writer/pkg/errors"
)

// Kind 节点类型标签
type Kind string

const (
	// KindLeaf 叶子节点：单次调用生成能力
	KindLeaf Kind = "leaf"
	// KindSequential 顺序节点：子节点依次填充，前一个的产出作为后一个的输入
	KindSequential Kind = "sequential"
)

// ExpectedType 期望输出形态标签
type ExpectedType string

// ExpectedText 非结构化文本输出
const ExpectedText ExpectedType = "text"

// PromptNode 提示节点：一条指令、期望输出形态与一段注入的上下文。
// 顺序节点额外持有有序子节点。节点为一次任务内的临时对象，任务结束即丢弃。
type PromptNode struct {
	Key         string
	Instruction string
	Expected    ExpectedType

	// Context 填充前注入的输入文本
	Context string
	// Content 最近一次填充的结果，填充完成前为空
	Content string

	kind     Kind
	children []*PromptNode
}

// NewLeaf 创建叶子节点
func NewLeaf(key string, instruction string) *PromptNode {
	return &PromptNode{
		Key:         key,
		Instruction: instruction,
		Expected:    ExpectedText,
		kind:        KindLeaf,
	}
}

// NewSequential 创建顺序节点，children 按声明顺序执行
func NewSequential(key string, children ...*PromptNode) *PromptNode {
	return &PromptNode{
		Key:      key,
		Expected: ExpectedText,
		kind:     KindSequential,
		children: children,
	}
}

// Kind 返回节点类型
func (n *PromptNode) Kind() Kind {
	return n.kind
}

// Children 返回有序子节点
func (n *PromptNode) Children() []*PromptNode {
	return n.children
}

// SetContext 注入输入上下文，必须在 Fill 前调用（Fill 内部会代为设置）
func (n *PromptNode) SetContext(contextText string) {
	n.Context = contextText
}

// Fill 填充节点内容。
// 叶子节点：以 (instruction, contextText) 调用一次生成能力。
// 顺序节点：子节点从左到右串联，第一个子节点的输入为 contextText，
// 之后每个子节点的输入为前一个子节点的 Content，父节点 Content 取最后一个子节点的 Content。
func (n *PromptNode) Fill(ctx context.Context, contextText string, gen port.TextGenerator) error {
	if n == nil {
		return apperrors.New(apperrors.CodeInvalidPipeline, "prompt node is nil")
	}
	if gen == nil {
		return apperrors.New(apperrors.CodeInvalidParam, "text generator is required")
	}

	n.SetContext(contextText)

	switch n.kind {
	case KindLeaf:
		out, err := gen.Generate(ctx, n.Instruction, contextText)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "leaf fill failed").WithDetail(n.Key)
		}
		n.Content = out
		return nil

	case KindSequential:
		if len(n.children) == 0 {
			// 没有叶子可调用也没有子节点可串联
			return apperrors.New(apperrors.CodeInvalidPipeline, "sequential node has no children").WithDetail(n.Key)
		}
		seen := make(map[string]struct{}, len(n.children))
		for _, child := range n.children {
			if _, dup := seen[child.Key]; dup {
				return apperrors.New(apperrors.CodeInvalidPipeline, "duplicate child key").WithDetail(child.Key)
			}
			seen[child.Key] = struct{}{}
		}

		childContext := contextText
		for _, child := range n.children {
			if err := child.Fill(ctx, childContext, gen); err != nil {
				return err
			}
			childContext = child.Content
		}
		n.Content = childContext
		return nil

	default:
		return apperrors.New(apperrors.CodeInvalidPipeline, "unknown node kind").WithDetail(string(n.kind))
	}
}
