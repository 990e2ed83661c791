package prompt

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed templates/*.txt
var templatesFS embed.FS

type PromptID string

const (
	PromptStoryStructV1      PromptID = "story_struct_v1"
	PromptChapterDirectoryV1 PromptID = "chapter_directory_v1"
	PromptChapterContentV1   PromptID = "chapter_content_v1"
	PromptOutlineTopicV1     PromptID = "outline_topic_v1"
	PromptChapterContextV1   PromptID = "chapter_context_v1"
)

type Registry struct {
	mu    sync.RWMutex
	cache map[PromptID]string
}

func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[PromptID]string),
	}
}

// Text 返回指定模板的文本内容，按需从嵌入文件加载并缓存
func (r *Registry) Text(id PromptID) (string, error) {
	if r == nil {
		return "", fmt.Errorf("prompt registry is nil")
	}

	r.mu.RLock()
	if text, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return text, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if text, ok := r.cache[id]; ok {
		return text, nil
	}

	path, err := resolvePromptFile(id)
	if err != nil {
		return "", err
	}
	text, err := readEmbeddedText(path)
	if err != nil {
		return "", err
	}

	r.cache[id] = text
	return text, nil
}

// Render 返回模板文本并替换 {name} 形式的占位符。
// 只对模板原文做一趟替换：替换值中出现的花括号不会被二次展开。
func (r *Registry) Render(id PromptID, vars map[string]string) (string, error) {
	text, err := r.Text(id)
	if err != nil {
		return "", err
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text), nil
}

func resolvePromptFile(id PromptID) (string, error) {
	switch id {
	case PromptStoryStructV1:
		return "templates/story_struct_v1.txt", nil
	case PromptChapterDirectoryV1:
		return "templates/chapter_directory_v1.txt", nil
	case PromptChapterContentV1:
		return "templates/chapter_content_v1.txt", nil
	case PromptOutlineTopicV1:
		return "templates/outline_topic_v1.txt", nil
	case PromptChapterContextV1:
		return "templates/chapter_context_v1.txt", nil
	default:
		return "", fmt.Errorf("unknown prompt id: %s", id)
	}
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
