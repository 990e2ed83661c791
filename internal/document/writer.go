package document

import (
	"context"
	"os"
	"path/filepath"

	apperrors "novel-writer/pkg/errors"
	"novel-writer/pkg/logger"
	"novel-writer/pkg/metrics"
)

// Writer 将文档写入指定目录。
// 目录由调用方显式给定（通常为带运行时间戳的子目录），不读取任何进程级全局状态。
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write 以 UTF-8 写入 dir/filename，返回完整路径
func (w *Writer) Write(ctx context.Context, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, "failed to create output directory").WithDetail(w.dir)
	}

	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, "failed to write document").WithDetail(path)
	}

	metrics.DocumentBytesWritten.Add(float64(len(data)))
	logger.Info(ctx, "document written",
		"path", path,
		"bytes", len(data),
	)
	return path, nil
}
