package model

import (
	"path"
	"strings"
)

// Role 表示一个源文件在工程中的角色。
type Role int

const (
	// RoleMainline 表示主线（产品）代码。
	RoleMainline Role = iota
	// RoleTest 表示测试代码。
	RoleTest
)

// String 返回角色的展示名称。
func (r Role) String() string {
	if r == RoleTest {
		return "Test"
	}
	return "Mainline"
}

// MarshalText 让 Role 在 JSON 中以名称而非数字出现。
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// testDirSegments 是会被整体视为测试目录的路径片段。
var testDirSegments = map[string]bool{
	"test":      true,
	"tests":     true,
	"testdata":  true,
	"spec":      true,
	"specs":     true,
	"__tests__": true,
}

// RoleForPath 根据路径形态判断文件角色。
// 启发式规则只看路径，不读取内容：
// - 目录链中出现 test/tests/testdata/spec/__tests__ → Test
// - 文件名形如 *_test.*、test_*、*.test.*、*.spec.* → Test
// - 其余一律视为 Mainline
func RoleForPath(filePath string) Role {
	normalized := strings.ToLower(path.Clean(strings.ReplaceAll(filePath, "\\", "/")))

	segments := strings.Split(normalized, "/")
	for _, segment := range segments[:max(len(segments)-1, 0)] {
		if testDirSegments[segment] {
			return RoleTest
		}
	}

	base := segments[len(segments)-1]
	stem := base
	if dot := strings.LastIndex(base, "."); dot > 0 {
		stem = base[:dot]
	}

	if strings.HasSuffix(stem, "_test") || strings.HasPrefix(stem, "test_") {
		return RoleTest
	}
	if strings.HasSuffix(stem, ".test") || strings.HasSuffix(stem, ".spec") {
		return RoleTest
	}

	return RoleMainline
}
