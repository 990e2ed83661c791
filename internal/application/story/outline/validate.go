package outline

import (
	"strconv"

	wfmodel "novel-writer/internal/workflow/model"
	apperrors "novel-writer/pkg/errors"
)

// ValidateOutline 校验解析后的大纲：标题非空、目录至少一条、章节标题非空。
func ValidateOutline(o *wfmodel.Outline) error {
	if o == nil {
		return apperrors.New(apperrors.CodeMalformedOutline, "outline is nil")
	}
	if o.Title == "" {
		return apperrors.New(apperrors.CodeMalformedOutline, "outline json missing title field")
	}
	if len(o.Directory) == 0 {
		return apperrors.New(apperrors.CodeEmptyDirectory, "outline directory is empty")
	}
	for i, entry := range o.Directory {
		if entry.Heading == "" {
			return apperrors.New(apperrors.CodeMalformedOutline, "directory entry has empty heading").
				WithDetail("index " + strconv.Itoa(i))
		}
	}
	return nil
}
