package counter

import (
	"strings"

	"mdkloc/internal/languages"
)

// FixedFormClass 是列敏感遗留语言的前置判定。
//
// 若语言声明了固定列规则，且该行在规则列（1 起始）上的字符
// 属于标记字符集，则整行权威地判定为 Comment，状态不受影响；
// 否则返回 ok=false，交还通用引擎用自由格式 token 继续处理。
// 固定列规则优先于同一行上可能命中的自由格式 token。
//
// 该函数是 (line, profile) 的纯函数，自身不保留任何跨行状态。
func FixedFormClass(line string, profile *languages.Profile) (Class, bool) {
	rule := profile.FixedColumn
	if rule == nil {
		return ClassBlank, false
	}

	column := 0
	for _, r := range line {
		column++
		if column < rule.Column {
			continue
		}
		if strings.ContainsRune(rule.Markers, r) {
			return ClassComment, true
		}
		break
	}

	return ClassBlank, false
}
