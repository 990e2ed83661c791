package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "novel-writer/pkg/errors"
)

func TestAssemblerRender(t *testing.T) {
	a := NewAssembler()
	a.SetMainTitle("长城")
	a.Append("第一章：起点", "正文一")
	a.Append("第二章：征途", "正文二")

	want := "# 长城\n\n\n## 第一章：起点\n\n正文一\n\n\n## 第二章：征途\n\n正文二"
	assert.Equal(t, want, a.Render())
}

func TestAssemblerRenderTitleOnly(t *testing.T) {
	a := NewAssembler()
	a.SetMainTitle("长城")
	assert.Equal(t, "# 长城", a.Render())
}

func TestAssemblerSectionsReturnsCopy(t *testing.T) {
	a := NewAssembler()
	a.Append("第一章", "正文")

	sections := a.Sections()
	sections[0].Heading = "改写"
	assert.Equal(t, "第一章", a.Sections()[0].Heading)
}

func TestWriterCreatesDirAndWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "2026-01-02_15-04-05")
	w := NewWriter(dir)

	path, err := w.Write(context.Background(), "长城.md", []byte("# 长城"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "长城.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# 长城", string(data))
}

func TestWriterWrapsStorageError(t *testing.T) {
	// 以普通文件占住目录路径，MkdirAll 必然失败
	base := t.TempDir()
	blocker := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	w := NewWriter(filepath.Join(blocker, "sub"))
	_, err := w.Write(context.Background(), "长城.md", []byte("# 长城"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeStorageError))
}
