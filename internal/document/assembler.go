// Package document 负责文档的增量组装与落盘
package document

import "strings"

// Section 文档中的一个章节
type Section struct {
	Heading string
	Body    string
}

// Assembler 按序累积章节并渲染为最终文档。
// 运行循环是唯一的写入方，循环结束后内容不再变化。
type Assembler struct {
	mainTitle string
	sections  []Section
}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// SetMainTitle 设置文档主标题
func (a *Assembler) SetMainTitle(title string) {
	a.mainTitle = title
}

// MainTitle 返回文档主标题
func (a *Assembler) MainTitle() string {
	return a.mainTitle
}

// Append 追加一个章节
func (a *Assembler) Append(heading string, body string) {
	a.sections = append(a.sections, Section{Heading: heading, Body: body})
}

// Sections 返回章节副本
func (a *Assembler) Sections() []Section {
	out := make([]Section, len(a.sections))
	copy(out, a.sections)
	return out
}

// Render 渲染为 markdown：主标题为一级标题，章节以二级标题开头，
// 章节之间以空行分隔。
func (a *Assembler) Render() string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(a.mainTitle)
	for _, s := range a.sections {
		b.WriteString("\n\n\n## ")
		b.WriteString(s.Heading)
		b.WriteString("\n\n")
		b.WriteString(s.Body)
	}
	return b.String()
}
