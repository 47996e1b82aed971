// Package languages 维护语言注释语法的注册中心。
// 注册中心在初始化后只读，可被任意数量的扫描 worker 并发查询。
package languages

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// UnknownLanguageError 表示调用方传入了未注册的语言标识。
// 语言识别是调用方职责，触发该错误意味着契约被破坏，
// 它只让当前文件的分析失败，不会中断整体扫描。
type UnknownLanguageError struct {
	Language string
}

// Error 实现 error 接口。
func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language: %s", e.Language)
}

// LanguageDescriptor 用于对外展示语言及后缀信息。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
}

// Registry 管理语言描述注册与文件名映射。
type Registry struct {
	profiles         []*Profile
	profileByName    map[string]*Profile
	profileByExt     map[string]*Profile
	profileByFile    map[string]*Profile
	prefixedProfiles []*Profile
}

// NewRegistry 创建并注册所有内置语言描述。
func NewRegistry() *Registry {
	return NewRegistryWithProfiles(nil)
}

// NewRegistryWithProfiles 在内置描述基础上叠加额外描述后冻结。
// 同名描述整体覆盖内置条目，用于用户自定义语言文件。
func NewRegistryWithProfiles(extra []Profile) *Registry {
	registry := &Registry{
		profileByName: make(map[string]*Profile),
	}

	for _, profile := range builtinProfiles() {
		registry.register(profile)
	}
	for _, profile := range extra {
		registry.register(profile)
	}
	registry.buildIndexes()

	return registry
}

// register 登记一个描述，同名描述整体替换先前内容。
// 仅在构造期调用，冻结后不再修改。
func (r *Registry) register(profile Profile) {
	stored := profile
	if existing, ok := r.profileByName[profile.Name]; ok {
		// 覆盖同名条目：替换内容但保持切片中的位置。
		*existing = stored
		return
	}

	entry := &stored
	r.profiles = append(r.profiles, entry)
	r.profileByName[entry.Name] = entry
}

// buildIndexes 在全部描述登记完成后一次性重建查找索引。
// 整体重建保证覆盖条目不会残留旧后缀或重复的前缀项。
func (r *Registry) buildIndexes() {
	r.profileByExt = make(map[string]*Profile)
	r.profileByFile = make(map[string]*Profile)
	r.prefixedProfiles = nil

	for _, entry := range r.profiles {
		for _, ext := range entry.Extensions {
			r.profileByExt[strings.ToLower(ext)] = entry
		}
		for _, name := range entry.Filenames {
			r.profileByFile[strings.ToLower(name)] = entry
		}
		if len(entry.FilenamePrefixes) > 0 {
			r.prefixedProfiles = append(r.prefixedProfiles, entry)
		}
	}
}

// Profile 按语言标识查找描述。
// 未注册标识返回 *UnknownLanguageError。
func (r *Registry) Profile(language string) (*Profile, error) {
	profile, ok := r.profileByName[language]
	if !ok {
		return nil, &UnknownLanguageError{Language: language}
	}
	return profile, nil
}

// ProfileForFile 根据文件名解析语言描述。
// 解析顺序：特殊文件名前缀 → 特殊文件名 → 后缀。
func (r *Registry) ProfileForFile(path string) (*Profile, bool) {
	base := strings.ToLower(filepath.Base(path))

	for _, entry := range r.prefixedProfiles {
		for _, prefix := range entry.FilenamePrefixes {
			if strings.HasPrefix(base, prefix) {
				return entry, true
			}
		}
	}

	if entry, ok := r.profileByFile[base]; ok {
		return entry, true
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	entry, ok := r.profileByExt[ext]
	return entry, ok
}

// Languages 返回已注册语言清单。
func (r *Registry) Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, len(r.profiles))
	for _, profile := range r.profiles {
		extensions := append([]string(nil), profile.Extensions...)
		sort.Strings(extensions)
		result = append(result, LanguageDescriptor{
			Name:       profile.Name,
			Extensions: extensions,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsForLanguage 返回指定语言对应的全部后缀。
func (r *Registry) ExtensionsForLanguage(language string) []string {
	profile, ok := r.profileByName[language]
	if !ok {
		return nil
	}
	extensions := append([]string(nil), profile.Extensions...)
	sort.Strings(extensions)
	return extensions
}
