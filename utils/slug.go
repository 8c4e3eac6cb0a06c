package utils

import (
	"strings"
	"unicode"
)

// Slugify 把分类名转成 URL slug：小写，非字母数字折叠为单个连字符
func Slugify(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return sb.String()
}
