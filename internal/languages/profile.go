package languages

// BlockPair 描述一种块注释分隔符对。
// Start 与 End 可以相同（例如 Python 的三引号文档字符串）。
type BlockPair struct {
	Start  string
	End    string
	Nested bool
}

// FixedColumnRule 描述列敏感语言的固定列注释规则。
// Column 为 1 起始的列号，Markers 中任一字符出现在该列即整行注释。
type FixedColumnRule struct {
	Column  int
	Markers string
}

// Profile 是一门语言注释语法的不可变描述。
// 分类引擎只依赖 Profile，不关心语言名称背后的具体语义。
//
// 匹配不变量：同一扫描位置上最左侧的 token 获胜，
// 起始位置相同时取最长 token。
type Profile struct {
	// Name 是语言标识（例如 Go、COBOL）。
	Name string
	// Extensions 是该语言的文件后缀（含点号，小写）。
	Extensions []string
	// Filenames 是无后缀的特殊文件名（小写精确匹配，如 makefile）。
	Filenames []string
	// FilenamePrefixes 是特殊文件名前缀（如 dockerfile）。
	FilenamePrefixes []string

	// LineComments 是行注释 token（自行终止，不改变状态）。
	LineComments []string
	// Blocks 是块注释分隔符对，按声明顺序参与匹配。
	Blocks []BlockPair
	// DocAsCode 是“注释形态但按代码计”的 token（如 Rust 的 #[ 属性）。
	DocAsCode []string
	// Quotes 是单行字符串的引号字符，引号内的注释 token 会被忽略。
	Quotes string

	// Shebang 为真时，文件首行的 #! 强制按代码计。
	Shebang bool
	// FoldCase 为真时，token 匹配不区分大小写（token 以小写书写）。
	FoldCase bool
	// FixedColumn 非空时，固定列适配器先于通用引擎运行。
	FixedColumn *FixedColumnRule
}

// HasComments 报告该语言是否存在任何注释语法。
// 无注释语言会让引擎短路为“非空即代码”。
func (p *Profile) HasComments() bool {
	return len(p.LineComments) > 0 || len(p.Blocks) > 0
}
