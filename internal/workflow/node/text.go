package node

import "unicode/utf8"

// TailRunes 返回 s 末尾最多 maxRunes 个字符，不足时原样返回。
// 按 rune 截取，避免在多字节字符中间切断。
func TailRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	total := utf8.RuneCountInString(s)
	if total <= maxRunes {
		return s
	}
	skip := total - maxRunes
	n := 0
	for i := range s {
		if n == skip {
			return s[i:]
		}
		n++
	}
	return s
}
