package node

import "strings"

// 模型拒答时常见的两类措辞
var refusalMarkers = []string{
	"无法满足",
	"无法完成",
}

// HasRefusalMarker 判断生成文本是否包含拒答标记。
// 任一标记命中即视为拒答，调用方据此决定是否重试。
func HasRefusalMarker(s string) bool {
	for _, marker := range refusalMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
