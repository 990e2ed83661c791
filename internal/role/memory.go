package role

// ContextMemory 产出记录：有序、仅追加。
// 最近一条作为下一个任务的上下文来源。
type ContextMemory struct {
	entries []string
}

func NewContextMemory() *ContextMemory {
	return &ContextMemory{}
}

// Add 追加一条产出
func (m *ContextMemory) Add(entry string) {
	m.entries = append(m.entries, entry)
}

// Latest 返回最近一条产出
func (m *ContextMemory) Latest() (string, bool) {
	if len(m.entries) == 0 {
		return "", false
	}
	return m.entries[len(m.entries)-1], true
}

// Len 返回产出条数
func (m *ContextMemory) Len() int {
	return len(m.entries)
}

// Entries 返回产出副本
func (m *ContextMemory) Entries() []string {
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}
