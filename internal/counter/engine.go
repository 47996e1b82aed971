// Package counter 实现逐行分类引擎、固定列适配器和文件分析器。
// 引擎是纯同步计算：没有 I/O、没有锁，状态由调用方显式传递，
// 因此多个文件可以安全并行分析。
package counter

import (
	"strings"

	"mdkloc/internal/languages"
)

// Class 表示单个物理行的分类结果。
// 每行恰好属于三类之一，不拆分也不重复计数。
type Class int

const (
	// ClassBlank 表示空行或纯空白行。
	ClassBlank Class = iota
	// ClassCode 表示包含代码的行。
	ClassCode
	// ClassComment 表示注释行。
	ClassComment
)

// String 返回分类的展示名称。
func (c Class) String() string {
	switch c {
	case ClassCode:
		return "code"
	case ClassComment:
		return "comment"
	default:
		return "blank"
	}
}

// State 是跨行传递的分类器状态。
// 零值表示普通状态；进入块注释后记录当前分隔符对和嵌套深度。
// State 每个文件独立创建，文件结束即丢弃，绝不跨文件共享。
type State struct {
	pair  *languages.BlockPair
	depth int
}

// InBlock 报告状态是否处于未闭合的块注释中。
func (s State) InBlock() bool {
	return s.pair != nil
}

// Depth 返回当前块注释嵌套深度，普通状态为 0。
func (s State) Depth() int {
	return s.depth
}

// Classify 对一个物理行做分类并返回更新后的状态。
//
// 算法（普通状态）：
//  1. shebang 语言的文件首行以 #! 开头 → 强制 Code；
//  2. 空白行 → Blank；
//  3. 无注释语法的语言短路为“非空即代码”；
//  4. 从左到右找最先出现的引号 / 行注释 / 块注释起始 token，
//     起始位置相同时取最长 token；引号只做行内抑制，不跨行；
//  5. 行注释前有非空白内容则整行计 Code，否则计 Comment；
//  6. 块注释按分隔符对与嵌套深度推进，行尾未闭合则状态转入块内。
//
// 块内状态由 scanInBlock 处理，EOF 处未闭合的块不是错误。
func Classify(state State, line string, profile *languages.Profile, firstLine bool) (Class, State) {
	if profile.FoldCase {
		line = strings.ToLower(line)
	}

	if !state.InBlock() {
		if profile.Shebang && firstLine && strings.HasPrefix(strings.TrimSpace(line), "#!") {
			return ClassCode, state
		}
		if strings.TrimSpace(line) == "" {
			return ClassBlank, state
		}
		if !profile.HasComments() && profile.Quotes == "" {
			return ClassCode, state
		}

		codeSeen, commentSeen, next := scanNormal(line, profile)
		if codeSeen || !commentSeen {
			return ClassCode, next
		}
		return ClassComment, next
	}

	return scanInBlock(line, profile, state)
}

// tokenMatch 描述一次 token 命中。
type tokenMatch struct {
	pos  int
	text string
	kind tokenKind
	pair *languages.BlockPair
}

type tokenKind int

const (
	kindNone tokenKind = iota
	kindQuote
	kindDocAsCode
	kindLineComment
	kindBlockStart
)

// better 报告候选 b 是否应当取代当前命中 a。
// 规则：更靠左优先；同位置更长 token 优先。
func (a tokenMatch) better(b tokenMatch) bool {
	if a.kind == kindNone {
		return true
	}
	if b.pos != a.pos {
		return b.pos < a.pos
	}
	return len(b.text) > len(a.text)
}

// findToken 在 s[from:] 中寻找最左（同位置最长）的语法 token。
func findToken(s string, from int, profile *languages.Profile) tokenMatch {
	best := tokenMatch{kind: kindNone}
	rest := s[from:]

	consider := func(candidate tokenMatch) {
		if candidate.pos >= 0 && best.better(candidate) {
			best = candidate
		}
	}

	for _, quote := range profile.Quotes {
		token := string(quote)
		consider(tokenMatch{pos: strings.Index(rest, token), text: token, kind: kindQuote})
	}
	for _, token := range profile.DocAsCode {
		consider(tokenMatch{pos: strings.Index(rest, token), text: token, kind: kindDocAsCode})
	}
	for _, token := range profile.LineComments {
		consider(tokenMatch{pos: strings.Index(rest, token), text: token, kind: kindLineComment})
	}
	for index := range profile.Blocks {
		pair := &profile.Blocks[index]
		consider(tokenMatch{pos: strings.Index(rest, pair.Start), text: pair.Start, kind: kindBlockStart, pair: pair})
	}

	if best.kind != kindNone {
		best.pos += from
	}
	return best
}

// scanNormal 在普通状态下扫描整行（或行尾重扫的剩余片段）。
// 返回片段内是否出现代码、是否出现注释，以及更新后的状态。
func scanNormal(s string, profile *languages.Profile) (bool, bool, State) {
	codeSeen := false
	commentSeen := false
	pos := 0

	for pos < len(s) {
		match := findToken(s, pos, profile)
		if match.kind == kindNone {
			if strings.TrimSpace(s[pos:]) != "" {
				codeSeen = true
			}
			break
		}

		if strings.TrimSpace(s[pos:match.pos]) != "" {
			codeSeen = true
		}

		switch match.kind {
		case kindQuote:
			// 行内字符串：跳到未转义的闭合引号，注释 token 在其中不生效。
			// 行尾仍未闭合时直接消费到行尾，不建立跨行字符串状态。
			codeSeen = true
			pos = skipQuoted(s, match.pos, match.text)

		case kindDocAsCode:
			// 属性类文档 token 按代码计，随后继续扫描剩余内容。
			codeSeen = true
			pos = match.pos + len(match.text)

		case kindLineComment:
			commentSeen = true
			return codeSeen, commentSeen, State{}

		case kindBlockStart:
			commentSeen = true
			after, closed, depth := matchBlockOnLine(s, match.pos+len(match.text), match.pair)
			if !closed {
				return codeSeen, commentSeen, State{pair: match.pair, depth: depth}
			}
			pos = after
		}
	}

	return codeSeen, commentSeen, State{}
}

// skipQuoted 从引号起始位置向后找闭合引号，返回继续扫描的位置。
// 反斜杠转义会吞掉下一个字符。
func skipQuoted(s string, start int, quote string) int {
	pos := start + len(quote)
	for pos < len(s) {
		if s[pos] == '\\' && pos+1 < len(s) {
			pos += 2
			continue
		}
		if strings.HasPrefix(s[pos:], quote) {
			return pos + len(quote)
		}
		pos++
	}
	return len(s)
}

// matchBlockOnLine 在行内推进一个刚打开的块注释。
// 返回（匹配闭合后的继续位置, 是否已闭合, 未闭合时的深度）。
func matchBlockOnLine(s string, pos int, pair *languages.BlockPair) (int, bool, int) {
	depth := 1
	for {
		endIdx := strings.Index(s[pos:], pair.End)
		startIdx := -1
		if pair.Nested {
			startIdx = strings.Index(s[pos:], pair.Start)
		}

		if endIdx < 0 {
			// 行内不再闭合；可嵌套对的额外起始 token 继续加深。
			if startIdx >= 0 {
				depth++
				pos += startIdx + len(pair.Start)
				continue
			}
			return len(s), false, depth
		}

		if startIdx >= 0 && startIdx < endIdx {
			depth++
			pos += startIdx + len(pair.Start)
			continue
		}

		depth--
		pos += endIdx + len(pair.End)
		if depth == 0 {
			return pos, true, 0
		}
	}
}

// scanInBlock 处理处于块注释状态中的行。
// 块内的纯空白行也计为 Comment，绝不计 Blank。
func scanInBlock(line string, profile *languages.Profile, state State) (Class, State) {
	pair := state.pair
	depth := state.depth
	pos := 0

	for {
		endIdx := strings.Index(line[pos:], pair.End)
		startIdx := -1
		if pair.Nested {
			startIdx = strings.Index(line[pos:], pair.Start)
		}

		if endIdx < 0 {
			if startIdx >= 0 {
				depth++
				pos += startIdx + len(pair.Start)
				continue
			}
			return ClassComment, State{pair: pair, depth: depth}
		}

		if startIdx >= 0 && startIdx < endIdx {
			depth++
			pos += startIdx + len(pair.Start)
			continue
		}

		depth--
		pos += endIdx + len(pair.End)
		if depth > 0 {
			continue
		}

		// 块已闭合：行尾剩余片段按普通规则重扫，
		// 片段含代码则整行计 Code，否则计 Comment。
		codeSeen, _, next := scanNormal(line[pos:], profile)
		if codeSeen {
			return ClassCode, next
		}
		return ClassComment, next
	}
}
