package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLoadsAllKnownPrompts(t *testing.T) {
	r := NewRegistry()
	ids := []PromptID{
		PromptStoryStructV1,
		PromptChapterDirectoryV1,
		PromptChapterContentV1,
		PromptOutlineTopicV1,
		PromptChapterContextV1,
	}
	for _, id := range ids {
		text, err := r.Text(id)
		require.NoError(t, err, "prompt %s", id)
		assert.NotEmpty(t, text, "prompt %s", id)
	}
}

func TestTextUnknownID(t *testing.T) {
	r := NewRegistry()
	_, err := r.Text(PromptID("does_not_exist"))
	assert.Error(t, err)
}

func TestRenderReplacesPlaceholders(t *testing.T) {
	r := NewRegistry()
	text, err := r.Render(PromptOutlineTopicV1, map[string]string{
		"topic":    "武侠",
		"language": "Chinese",
	})
	require.NoError(t, err)

	assert.Contains(t, text, "武侠")
	assert.Contains(t, text, "Chinese")
	assert.NotContains(t, text, "{topic}")
	assert.NotContains(t, text, "{language}")
}

func TestRenderDoesNotReexpandSubstitutedValues(t *testing.T) {
	// 替换值里出现的占位符标记原样保留，不参与二次展开
	r := NewRegistry()
	text, err := r.Render(PromptChapterContextV1, map[string]string{
		"summary":  "主角出场",
		"previous": "结尾恰好带有{summary}字样",
		"language": "Chinese",
	})
	require.NoError(t, err)

	assert.Contains(t, text, "结尾恰好带有{summary}字样")
	assert.Contains(t, text, "主角出场")
	assert.NotContains(t, text, "结尾恰好带有主角出场字样")
}
