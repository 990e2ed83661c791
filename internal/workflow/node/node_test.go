package node

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "novel-writer/pkg/errors"
)

type scriptedGenerator struct {
	responses []string
	calls     []generatorCall
}

type generatorCall struct {
	instruction string
	context     string
}

func (g *scriptedGenerator) Generate(_ context.Context, instruction string, contextText string) (string, error) {
	g.calls = append(g.calls, generatorCall{instruction: instruction, context: contextText})
	if len(g.responses) == 0 {
		return "", nil
	}
	resp := g.responses[0]
	g.responses = g.responses[1:]
	return resp, nil
}

func TestLeafFill(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{"生成结果"}}
	leaf := NewLeaf("struct_write", "写出故事结构")

	err := leaf.Fill(context.Background(), "题材：武侠", gen)
	require.NoError(t, err)

	assert.Equal(t, "生成结果", leaf.Content)
	require.Len(t, gen.calls, 1)
	assert.Equal(t, "写出故事结构", gen.calls[0].instruction)
	assert.Equal(t, "题材：武侠", gen.calls[0].context)
}

func TestSequentialFillThreadsChildOutputs(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{"A", "B"}}
	l1 := NewLeaf("first", "指令一")
	l2 := NewLeaf("second", "指令二")
	root := NewSequential("pipeline", l1, l2)

	err := root.Fill(context.Background(), "顶层上下文", gen)
	require.NoError(t, err)

	// 第二个叶子的输入是第一个叶子的产出，而非顶层上下文
	require.Len(t, gen.calls, 2)
	assert.Equal(t, "顶层上下文", gen.calls[0].context)
	assert.Equal(t, "A", gen.calls[1].context)
	assert.Equal(t, "B", root.Content)
	assert.Equal(t, "A", l1.Content)
	assert.Equal(t, "B", l2.Content)
}

func TestSequentialFillRejectsEmptyChildren(t *testing.T) {
	gen := &scriptedGenerator{}
	root := NewSequential("empty")

	err := root.Fill(context.Background(), "上下文", gen)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidPipeline))
	assert.Empty(t, root.Content)
	assert.Empty(t, gen.calls)
}

func TestSequentialFillRejectsDuplicateChildKeys(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{"A", "B"}}
	root := NewSequential("pipeline",
		NewLeaf("same", "指令一"),
		NewLeaf("same", "指令二"),
	)

	err := root.Fill(context.Background(), "上下文", gen)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidPipeline))
}

func TestTailRunes(t *testing.T) {
	assert.Equal(t, "", TailRunes("abc", 0))
	assert.Equal(t, "abc", TailRunes("abc", 10))
	assert.Equal(t, "bc", TailRunes("abc", 2))

	// 多字节字符按 rune 截取
	s := strings.Repeat("甲", 150)
	tail := TailRunes(s, 100)
	assert.Equal(t, strings.Repeat("甲", 100), tail)
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ExtractJSONObject(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, ExtractJSONObject("好的，以下是结果：\n{\"a\":1}\n希望对您有帮助"))
	assert.Equal(t, `[1,2]`, ExtractJSONObject("结果：[1,2]"))
	assert.Equal(t, "完全不是 JSON", ExtractJSONObject("  完全不是 JSON  "))
}

func TestHasRefusalMarker(t *testing.T) {
	assert.False(t, HasRefusalMarker("第一章的正文内容"))
	assert.True(t, HasRefusalMarker("很抱歉，我无法满足这个请求"))
	assert.True(t, HasRefusalMarker("很抱歉，我无法完成这个请求"))
	assert.True(t, HasRefusalMarker("无法满足，也无法完成"))
}
