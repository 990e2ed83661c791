package model

// OutlineGenerateInput 大纲生成输入
type OutlineGenerateInput struct {
	// Topic 自由描述的小说题材
	Topic string
	// Language 目标写作语言
	Language string
}

// DirectoryEntry 目录中的一个章节条目
type DirectoryEntry struct {
	// Heading 章节标题
	Heading string
	// Summary 本章故事概况
	Summary string
}

// Outline 大纲：小说标题与按序排列的章节目录
type Outline struct {
	Title     string
	Directory []DirectoryEntry
}
