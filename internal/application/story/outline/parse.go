package outline

import (
	"encoding/json"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	wfmodel "novel-writer/internal/workflow/model"
	wfnode "novel-writer/internal/workflow/node"
	apperrors "novel-writer/pkg/errors"
)

// outlinePayload 模型输出的字典结构。
// directory 用有序映射解码：对象内的键序决定章节顺序。
type outlinePayload struct {
	Title     string                                  `json:"title"`
	Directory *orderedmap.OrderedMap[string, string] `json:"directory"`
}

// ParseOutline 从模型输出中解析大纲，保留目录声明顺序。
func ParseOutline(rawText string) (*wfmodel.Outline, error) {
	jsonText := wfnode.ExtractJSONObject(rawText)
	if strings.TrimSpace(jsonText) == "" {
		return nil, apperrors.New(apperrors.CodeMalformedOutline, "empty outline output")
	}

	var payload outlinePayload
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeMalformedOutline, "failed to parse outline json")
	}
	if payload.Directory == nil {
		return nil, apperrors.New(apperrors.CodeMalformedOutline, "outline json missing directory field")
	}

	o := &wfmodel.Outline{
		Title:     strings.TrimSpace(payload.Title),
		Directory: make([]wfmodel.DirectoryEntry, 0, payload.Directory.Len()),
	}
	for pair := payload.Directory.Oldest(); pair != nil; pair = pair.Next() {
		o.Directory = append(o.Directory, wfmodel.DirectoryEntry{
			Heading: strings.TrimSpace(pair.Key),
			Summary: strings.TrimSpace(pair.Value),
		})
	}
	return o, nil
}
