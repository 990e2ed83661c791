package role

import (
	apperrors "novel-writer/pkg/errors"
)

// Task 角色待执行的一个生成单元
type Task interface {
	Name() string
}

// OutlineTask 大纲任务：生成故事结构与章节目录。
// 每次运行恰好一个，且总是第一个执行。
type OutlineTask struct {
	Language string
}

func (t *OutlineTask) Name() string { return "outline" }

// ChapterTask 章节任务：派生自大纲目录，按目录声明顺序执行。
type ChapterTask struct {
	Heading  string
	Summary  string
	Language string
}

func (t *ChapterTask) Name() string { return "chapter:" + t.Heading }

// taskQueue 带游标的有序任务列表。
// replace 仅允许调用一次：大纲任务完成后用派生的章节任务整体替换。
type taskQueue struct {
	tasks    []Task
	index    int
	selected bool
	replaced bool
}

func newTaskQueue(tasks ...Task) *taskQueue {
	return &taskQueue{tasks: tasks}
}

// think 推进游标：无选中任务时选中第 0 个；否则前进一位，越界则清除选中。
func (q *taskQueue) think() {
	if !q.selected {
		if len(q.tasks) > 0 {
			q.index = 0
			q.selected = true
		}
		return
	}
	if q.index+1 < len(q.tasks) {
		q.index++
		return
	}
	q.selected = false
	q.tasks = nil
}

// current 返回当前选中的任务，未选中时返回 nil
func (q *taskQueue) current() Task {
	if !q.selected || q.index >= len(q.tasks) {
		return nil
	}
	return q.tasks[q.index]
}

// replace 用新任务整体替换队列并清除选中，下次 think 从头开始。
// 只允许发生一次，防止章节执行途中再次改写队列。
func (q *taskQueue) replace(tasks []Task) error {
	if q.replaced {
		return apperrors.New(apperrors.CodeInternalError, "task queue already replaced")
	}
	q.replaced = true
	q.tasks = tasks
	q.index = 0
	q.selected = false
	return nil
}
