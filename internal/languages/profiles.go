package languages

// builtinProfiles 返回全部内置语言描述。
// 表驱动设计：新增语言只需要追加一个 Profile 条目，
// 分类引擎本身不感知语言数量。
func builtinProfiles() []Profile {
	cStyleBlocks := []BlockPair{{Start: "/*", End: "*/"}}
	xmlBlocks := []BlockPair{{Start: "<!--", End: "-->"}}

	return []Profile{
		{
			Name:         "Rust",
			Extensions:   []string{".rs"},
			LineComments: []string{"//"},
			Blocks:       []BlockPair{{Start: "/*", End: "*/", Nested: true}},
			DocAsCode:    []string{"#["},
			Quotes:       `"`,
		},
		{
			Name:         "Go",
			Extensions:   []string{".go"},
			LineComments: []string{"//"},
			Blocks:       cStyleBlocks,
			Quotes:       "\"'`",
		},
		{
			Name:         "Python",
			Extensions:   []string{".py"},
			LineComments: []string{"#"},
			Blocks: []BlockPair{
				{Start: `"""`, End: `"""`},
				{Start: "'''", End: "'''"},
			},
			Quotes: `"'`,
		},
		{
			Name:         "Java",
			Extensions:   []string{".java"},
			LineComments: []string{"//"},
			Blocks:       cStyleBlocks,
			Quotes:       `"'`,
		},
		{
			Name:         "C/C++",
			Extensions:   []string{".c", ".h", ".cpp", ".hpp"},
			LineComments: []string{"//"},
			Blocks:       cStyleBlocks,
			Quotes:       `"'`,
		},
		{
			Name:         "C#",
			Extensions:   []string{".cs"},
			LineComments: []string{"//"},
			Blocks:       cStyleBlocks,
			Quotes:       `"'`,
		},
		{
			Name:         "JavaScript",
			Extensions:   []string{".js"},
			LineComments: []string{"//"},
			Blocks: []BlockPair{
				{Start: "/*", End: "*/"},
				{Start: "<!--", End: "-->"},
			},
			Quotes: "\"'`",
		},
		{
			Name:         "TypeScript",
			Extensions:   []string{".ts"},
			LineComments: []string{"//"},
			Blocks:       cStyleBlocks,
			Quotes:       "\"'`",
		},
		{
			Name:         "JSX",
			Extensions:   []string{".jsx"},
			LineComments: []string{"//"},
			Blocks: []BlockPair{
				{Start: "/*", End: "*/"},
				{Start: "<!--", End: "-->"},
			},
			Quotes: "\"'`",
		},
		{
			Name:         "TSX",
			Extensions:   []string{".tsx"},
			LineComments: []string{"//"},
			Blocks: []BlockPair{
				{Start: "/*", End: "*/"},
				{Start: "<!--", End: "-->"},
			},
			Quotes: "\"'`",
		},
		{
			Name:         "PHP",
			Extensions:   []string{".php"},
			LineComments: []string{"//", "#"},
			Blocks:       cStyleBlocks,
			Quotes:       `"'`,
		},
		{
			Name:         "Perl",
			Extensions:   []string{".pl", ".pm", ".t"},
			LineComments: []string{"#"},
			Blocks: []BlockPair{
				{Start: "=pod", End: "=cut"},
				{Start: "=head", End: "=cut"},
			},
			Quotes:  `"'`,
			Shebang: true,
		},
		{
			Name:         "Ruby",
			Extensions:   []string{".rb"},
			LineComments: []string{"#"},
			Blocks:       []BlockPair{{Start: "=begin", End: "=end"}},
			Quotes:       `"'`,
			Shebang:      true,
		},
		{
			Name:       "Shell",
			Extensions: []string{".sh"},
			Filenames: []string{
				".bashrc", ".bash_profile", ".profile",
				".zshrc", ".zprofile", ".zshenv",
				".kshrc", ".cshrc",
			},
			LineComments: []string{"#"},
			Quotes:       `"'`,
			Shebang:      true,
		},
		{
			Name:         "Pascal",
			Extensions:   []string{".pas"},
			LineComments: []string{"//"},
			Blocks: []BlockPair{
				{Start: "{", End: "}", Nested: true},
				{Start: "(*", End: "*)", Nested: true},
			},
			Quotes: "'",
		},
		{
			Name:         "Scala",
			Extensions:   []string{".scala", ".sbt"},
			LineComments: []string{"//"},
			Blocks:       cStyleBlocks,
			Quotes:       `"`,
		},
		{
			Name:         "YAML",
			Extensions:   []string{".yaml", ".yml"},
			LineComments: []string{"#"},
			Quotes:       `"'`,
		},
		{
			Name:       "JSON",
			Extensions: []string{".json"},
		},
		{
			Name:       "XML",
			Extensions: []string{".xml", ".xsd"},
			Blocks:     xmlBlocks,
		},
		{
			Name:       "HTML",
			Extensions: []string{".html", ".htm", ".xhtml"},
			Blocks:     xmlBlocks,
		},
		{
			Name:         "TOML",
			Extensions:   []string{".toml"},
			LineComments: []string{"#"},
			Quotes:       `"'`,
		},
		{
			Name:         "Makefile",
			Extensions:   []string{".mk", ".mak"},
			Filenames:    []string{"makefile", "gnumakefile", "bsdmakefile"},
			LineComments: []string{"#"},
		},
		{
			Name:             "Dockerfile",
			FilenamePrefixes: []string{"dockerfile"},
			LineComments:     []string{"#"},
			Quotes:           `"`,
		},
		{
			Name:         "INI",
			Extensions:   []string{".ini", ".cfg", ".conf", ".properties", ".prop"},
			LineComments: []string{";", "#"},
		},
		{
			Name:         "HCL",
			Extensions:   []string{".hcl", ".tf", ".tfvars"},
			LineComments: []string{"#", "//"},
			Blocks:       cStyleBlocks,
			Quotes:       `"`,
		},
		{
			Name:         "CMake",
			Extensions:   []string{".cmake"},
			Filenames:    []string{"cmakelists.txt"},
			LineComments: []string{"#"},
			Quotes:       `"`,
		},
		{
			Name:         "PowerShell",
			Extensions:   []string{".ps1", ".psm1", ".psd1"},
			LineComments: []string{"#"},
			Blocks:       []BlockPair{{Start: "<#", End: "#>"}},
			Quotes:       `"'`,
		},
		{
			Name:         "Batch",
			Extensions:   []string{".bat", ".cmd"},
			LineComments: []string{"rem ", "::"},
			FoldCase:     true,
		},
		{
			Name:         "TCL",
			Extensions:   []string{".tcl"},
			LineComments: []string{"#"},
			Quotes:       `"`,
			Shebang:      true,
		},
		{
			Name:       "ReStructuredText",
			Extensions: []string{".rst", ".rest"},
		},
		{
			Name:         "Velocity",
			Extensions:   []string{".vm", ".vtl"},
			LineComments: []string{"##"},
			Blocks:       []BlockPair{{Start: "#*", End: "*#"}},
		},
		{
			Name:       "Mustache",
			Extensions: []string{".mustache"},
			Blocks:     []BlockPair{{Start: "{{!", End: "}}"}},
		},
		{
			Name:         "Protobuf",
			Extensions:   []string{".proto"},
			LineComments: []string{"//"},
			Blocks:       cStyleBlocks,
			Quotes:       `"`,
		},
		{
			Name:       "SVG",
			Extensions: []string{".svg"},
			Blocks:     xmlBlocks,
		},
		{
			Name:       "XSL",
			Extensions: []string{".xsl", ".xslt"},
			Blocks:     xmlBlocks,
		},
		{
			Name:         "Algol",
			Extensions:   []string{".alg", ".algol", ".a60", ".a68"},
			LineComments: []string{"#"},
			Blocks:       []BlockPair{{Start: "comment", End: ";"}},
			FoldCase:     true,
		},
		{
			Name:         "COBOL",
			Extensions:   []string{".cob", ".cbl", ".cobol", ".cpy"},
			LineComments: []string{"*>"},
			FixedColumn:  &FixedColumnRule{Column: 7, Markers: "*/"},
		},
		{
			Name:         "Fortran",
			Extensions:   []string{".f", ".for", ".f77", ".f90", ".f95", ".f03", ".f08", ".f18"},
			LineComments: []string{"!"},
			Quotes:       `"'`,
			FixedColumn:  &FixedColumnRule{Column: 1, Markers: "CcDd*"},
		},
		{
			Name:         "Assembly",
			Extensions:   []string{".asm", ".s"},
			LineComments: []string{";", "#", "//"},
			Quotes:       `"'`,
		},
		{
			Name:         "DCL",
			Extensions:   []string{".com"},
			LineComments: []string{"$!", "!"},
			Quotes:       `"`,
		},
		{
			Name:         "IPLAN",
			Extensions:   []string{".ipl"},
			LineComments: []string{"!"},
			Blocks:       cStyleBlocks,
			Quotes:       `"'`,
		},
	}
}
