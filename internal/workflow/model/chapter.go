package model

// ChapterGenerateInput 章节生成输入
type ChapterGenerateInput struct {
	// PreviousContext 上一章内容的末尾，首章时为小说标题
	PreviousContext string
	// Heading 章节标题
	Heading string
	// Summary 本章故事概况
	Summary string
	// Language 目标写作语言
	Language string
}

// ChapterGenerateOutput 章节生成结果
type ChapterGenerateOutput struct {
	Heading string
	// Body 生成的章节正文（不含标题前缀）
	Body string
	// Attempts 实际生成次数
	Attempts int
}

// Formatted 返回带章节标题前缀的文档片段
func (o *ChapterGenerateOutput) Formatted() string {
	return "## " + o.Heading + "\n\n" + o.Body
}
