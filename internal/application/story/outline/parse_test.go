package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wfmodel "novel-writer/internal/workflow/model"
	apperrors "novel-writer/pkg/errors"
)

func TestParseOutlinePreservesDirectoryOrder(t *testing.T) {
	raw := `{"title": "星海孤舟", "directory": {"第三章：归途": "概况三", "第一章：启航": "概况一", "第二章：风暴": "概况二"}}`

	o, err := ParseOutline(raw)
	require.NoError(t, err)

	assert.Equal(t, "星海孤舟", o.Title)
	require.Len(t, o.Directory, 3)
	// 章节顺序来自 JSON 对象内键的声明顺序，而非字典序
	assert.Equal(t, "第三章：归途", o.Directory[0].Heading)
	assert.Equal(t, "第一章：启航", o.Directory[1].Heading)
	assert.Equal(t, "第二章：风暴", o.Directory[2].Heading)
	assert.Equal(t, "概况二", o.Directory[2].Summary)
}

func TestParseOutlineExtractsFromNoisyText(t *testing.T) {
	raw := "好的，以下是小说目录：\n{\"title\":\"长城\",\"directory\":{\"第一章：起点\":\"概况\"}}\n希望您满意。"

	o, err := ParseOutline(raw)
	require.NoError(t, err)
	assert.Equal(t, "长城", o.Title)
	require.Len(t, o.Directory, 1)
	assert.Equal(t, "第一章：起点", o.Directory[0].Heading)
}

func TestParseOutlineMalformed(t *testing.T) {
	_, err := ParseOutline("这不是一个字典")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeMalformedOutline))

	_, err = ParseOutline(`{"title":"x"}`)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeMalformedOutline))
}

func TestValidateOutline(t *testing.T) {
	err := ValidateOutline(&wfmodel.Outline{Title: "x", Directory: []wfmodel.DirectoryEntry{
		{Heading: "第一章", Summary: "概况"},
	}})
	assert.NoError(t, err)

	err = ValidateOutline(&wfmodel.Outline{Directory: []wfmodel.DirectoryEntry{{Heading: "第一章"}}})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeMalformedOutline))

	err = ValidateOutline(&wfmodel.Outline{Title: "x"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeEmptyDirectory))

	err = ValidateOutline(&wfmodel.Outline{Title: "x", Directory: []wfmodel.DirectoryEntry{
		{Heading: "第一章", Summary: "概况"},
		{Heading: "", Summary: "概况"},
	}})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeMalformedOutline))
}
