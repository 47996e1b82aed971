package languages

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// profileDocument 是用户自定义语言文件的根结构。
type profileDocument struct {
	Languages []profileSpec `yaml:"languages"`
}

// profileSpec 是 YAML 中单个语言条目的外部形态。
type profileSpec struct {
	Name             string      `yaml:"name"`
	Extensions       []string    `yaml:"extensions"`
	Filenames        []string    `yaml:"filenames"`
	FilenamePrefixes []string    `yaml:"filename_prefixes"`
	LineComments     []string    `yaml:"line_comments"`
	Blocks           []blockSpec `yaml:"blocks"`
	DocAsCode        []string    `yaml:"doc_as_code"`
	Quotes           string      `yaml:"quotes"`
	Shebang          bool        `yaml:"shebang"`
	FoldCase         bool        `yaml:"fold_case"`
	FixedColumn      *columnSpec `yaml:"fixed_column"`
}

type blockSpec struct {
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
	Nested bool   `yaml:"nested"`
}

type columnSpec struct {
	Column  int    `yaml:"column"`
	Markers string `yaml:"markers"`
}

// LoadProfiles 从 YAML 文件解析用户自定义语言描述。
// 返回的切片可直接传入 NewRegistryWithProfiles 叠加或覆盖内置语言。
func LoadProfiles(path string) ([]Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	var document profileDocument
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}

	profiles := make([]Profile, 0, len(document.Languages))
	for index, spec := range document.Languages {
		if spec.Name == "" {
			return nil, fmt.Errorf("profiles file: entry %d has no name", index)
		}

		extensions := make([]string, 0, len(spec.Extensions))
		for _, ext := range spec.Extensions {
			if strings.TrimSpace(ext) == "" {
				return nil, fmt.Errorf("profiles file: language %s has an empty extension", spec.Name)
			}
			// 后缀解析按 filepath.Ext 的带点小写形式建索引，这里统一归一化。
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			extensions = append(extensions, strings.ToLower(ext))
		}

		profile := Profile{
			Name:             spec.Name,
			Extensions:       extensions,
			Filenames:        spec.Filenames,
			FilenamePrefixes: spec.FilenamePrefixes,
			LineComments:     spec.LineComments,
			DocAsCode:        spec.DocAsCode,
			Quotes:           spec.Quotes,
			Shebang:          spec.Shebang,
			FoldCase:         spec.FoldCase,
		}
		for _, block := range spec.Blocks {
			if block.Start == "" || block.End == "" {
				return nil, fmt.Errorf("profiles file: language %s has an incomplete block pair", spec.Name)
			}
			profile.Blocks = append(profile.Blocks, BlockPair{
				Start:  block.Start,
				End:    block.End,
				Nested: block.Nested,
			})
		}
		if spec.FixedColumn != nil {
			if spec.FixedColumn.Column < 1 {
				return nil, fmt.Errorf("profiles file: language %s has an invalid fixed column", spec.Name)
			}
			profile.FixedColumn = &FixedColumnRule{
				Column:  spec.FixedColumn.Column,
				Markers: spec.FixedColumn.Markers,
			}
		}

		profiles = append(profiles, profile)
	}

	return profiles, nil
}
