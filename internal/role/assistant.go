// Package role 实现故事助手的顺序执行循环
package role

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	chaptergen "novel-writer/internal/application/story/chapter"
	outlinegen "novel-writer/internal/application/story/outline"
	"novel-writer/internal/document"
	"novel-writer/internal/pacing"
	wfmodel "novel-writer/internal/workflow/model"
	wfnode "novel-writer/internal/workflow/node"
	"novel-writer/internal/workflow/port"
	apperrors "novel-writer/pkg/errors"
	"novel-writer/pkg/logger"
	"novel-writer/pkg/metrics"
	"novel-writer/pkg/tracer"
)

// DefaultContextTailRunes 续写上下文默认保留上一章末尾的字符数
const DefaultContextTailRunes = 100

// DocumentWriter 文档落盘依赖
type DocumentWriter interface {
	Write(ctx context.Context, filename string, data []byte) (string, error)
}

// Options 故事助手配置
type Options struct {
	// Language 目标写作语言，空值时为 Chinese
	Language string
	// MaxAttempts 单章最多生成次数
	MaxAttempts int
	// ContextTailRunes 续写上下文保留上一章末尾的字符数
	ContextTailRunes int
}

// StoryAssistant 故事助手：先生成大纲，再按目录逐章生成，
// 每章以上一章末尾为上下文，全部完成后组装并落盘。
type StoryAssistant struct {
	language  string
	tailRunes int

	outline *outlinegen.Generator
	chapter *chaptergen.Generator
	pacer   pacing.Pacer
	writer  DocumentWriter

	queue     *taskQueue
	memory    *ContextMemory
	assembler *document.Assembler

	mainTitle    string
	chapterCount int
}

func NewStoryAssistant(gen port.TextGenerator, pacer pacing.Pacer, writer DocumentWriter, opts Options) *StoryAssistant {
	language := strings.TrimSpace(opts.Language)
	if language == "" {
		language = "Chinese"
	}
	tailRunes := opts.ContextTailRunes
	if tailRunes <= 0 {
		tailRunes = DefaultContextTailRunes
	}
	if pacer == nil {
		pacer = pacing.NopPacer{}
	}
	return &StoryAssistant{
		language:  language,
		tailRunes: tailRunes,
		outline:   outlinegen.NewGenerator(gen),
		chapter:   chaptergen.NewGenerator(gen, opts.MaxAttempts),
		pacer:     pacer,
		writer:    writer,
		queue:     newTaskQueue(&OutlineTask{Language: language}),
		memory:    NewContextMemory(),
		assembler: document.NewAssembler(),
	}
}

// Run 执行完整的生成循环，返回最后一章的产出。
// 循环：think 推进游标 -> 限速等待 -> act 执行当前任务，直到队列耗尽；
// 随后渲染文档并落盘。任何致命错误中止运行，文档不落盘。
func (a *StoryAssistant) Run(ctx context.Context, topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", apperrors.New(apperrors.CodeInvalidParam, "topic is required")
	}
	if a.writer == nil {
		return "", apperrors.New(apperrors.CodeInvalidParam, "document writer is required")
	}

	start := time.Now()
	defer func() {
		metrics.RunDuration.Observe(time.Since(start).Seconds())
	}()

	ctx = logger.WithContext(ctx, logger.RunIDKey, uuid.NewString())
	ctx, span := tracer.Start(ctx, "role.Run")
	defer span.End()

	logger.Info(ctx, "story run started", "topic", topic, "language", a.language)

	// 题材作为第一条记录，供大纲任务读取
	a.memory.Add(topic)

	var last string
	for {
		a.queue.think()
		task := a.queue.current()
		if task == nil {
			break
		}

		if err := a.pacer.Wait(ctx); err != nil {
			span.RecordError(err)
			return "", err
		}

		out, err := a.act(ctx, task)
		if err != nil {
			span.RecordError(err)
			return "", err
		}
		last = out
	}

	rendered := a.assembler.Render()
	if _, err := a.writer.Write(ctx, a.mainTitle+".md", []byte(rendered)); err != nil {
		span.RecordError(err)
		return "", err
	}

	logger.Info(ctx, "story run finished",
		"title", a.mainTitle,
		"chapters", a.chapterCount,
		"duration", time.Since(start).String(),
	)
	return last, nil
}

// act 执行当前任务并返回其产出
func (a *StoryAssistant) act(ctx context.Context, task Task) (string, error) {
	ctx = logger.WithContext(ctx, logger.TaskKey, task.Name())

	switch t := task.(type) {
	case *OutlineTask:
		topic, ok := a.memory.Latest()
		if !ok {
			return "", apperrors.New(apperrors.CodeInternalError, "context memory is empty before outline task")
		}
		o, err := a.outline.Generate(ctx, &wfmodel.OutlineGenerateInput{
			Topic:    topic,
			Language: t.Language,
		})
		if err != nil {
			return "", err
		}
		return a.handleDirectory(ctx, o)

	case *ChapterTask:
		a.chapterCount++
		out, err := a.chapter.Generate(ctx, &wfmodel.ChapterGenerateInput{
			PreviousContext: a.previousContext(),
			Heading:         t.Heading,
			Summary:         t.Summary,
			Language:        t.Language,
		})
		if err != nil {
			return "", err
		}

		formatted := out.Formatted()
		a.assembler.Append(out.Heading, out.Body)
		// 本章产出进入记忆，作为下一章的衔接上下文
		a.memory.Add(formatted)
		metrics.ChaptersGeneratedTotal.Inc()
		logger.Info(ctx, "chapter generated", "attempts", out.Attempts)
		return formatted, nil

	default:
		return "", apperrors.New(apperrors.CodeInternalError, "unknown task type").WithDetail(task.Name())
	}
}

// handleDirectory 处理大纲结果：记录主标题，按目录顺序派生章节任务并整体替换队列。
// 返回目录摘要，不进入记忆也不进入文档。
func (a *StoryAssistant) handleDirectory(ctx context.Context, o *wfmodel.Outline) (string, error) {
	a.mainTitle = o.Title
	a.assembler.SetMainTitle(o.Title)

	var summary strings.Builder
	summary.WriteString(o.Title)
	summary.WriteString("\n")

	tasks := make([]Task, 0, len(o.Directory))
	for _, entry := range o.Directory {
		summary.WriteString("- ")
		summary.WriteString(entry.Heading)
		summary.WriteString("\n")
		tasks = append(tasks, &ChapterTask{
			Heading:  entry.Heading,
			Summary:  entry.Summary,
			Language: a.language,
		})
	}

	if err := a.queue.replace(tasks); err != nil {
		return "", err
	}
	logger.Info(ctx, "task queue replaced with chapter tasks", "count", len(tasks))
	return summary.String(), nil
}

// previousContext 计算章节任务的输入上下文：
// 首章使用小说主标题；之后使用最近一条记忆的末尾（最多 tailRunes 个字符）。
func (a *StoryAssistant) previousContext() string {
	if a.chapterCount <= 1 {
		return a.mainTitle
	}
	latest, _ := a.memory.Latest()
	return wfnode.TailRunes(latest, a.tailRunes)
}
