package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLineMetricsAdd 验证统计值叠加。
func TestLineMetricsAdd(t *testing.T) {
	sum := LineMetrics{Total: 10, Code: 6, Comment: 3, Blank: 1}
	sum.Add(LineMetrics{Total: 4, Code: 2, Comment: 1, Blank: 1})

	assert.Equal(t, LineMetrics{Total: 14, Code: 8, Comment: 4, Blank: 2}, sum)
	assert.Equal(t, sum.Total, sum.Code+sum.Comment+sum.Blank)
}

// TestLanguageMetricsAddFile 验证语言聚合的角色拆分。
func TestLanguageMetricsAddFile(t *testing.T) {
	summary := LanguageMetrics{Language: "Go"}

	summary.AddFile(RoleMainline, LineMetrics{Total: 5, Code: 4, Blank: 1})
	summary.AddFile(RoleMainline, LineMetrics{Total: 2, Code: 2})
	summary.AddFile(RoleTest, LineMetrics{Total: 3, Code: 2, Comment: 1})

	assert.Equal(t, int64(3), summary.Files)
	assert.Equal(t, LineMetrics{Total: 10, Code: 8, Comment: 1, Blank: 1}, summary.Metrics)

	mainline := summary.Roles[RoleMainline.String()]
	assert.Equal(t, int64(2), mainline.Files)
	assert.Equal(t, int64(6), mainline.Metrics.Code)

	test := summary.Roles[RoleTest.String()]
	assert.Equal(t, int64(1), test.Files)
	assert.Equal(t, int64(1), test.Metrics.Comment)
}

// TestTotalMetricsAddFileMetrics 验证项目总计的文件计数。
func TestTotalMetricsAddFileMetrics(t *testing.T) {
	var total TotalMetrics

	total.AddFileMetrics(LineMetrics{Total: 3, Code: 2, Comment: 1})
	total.AddFileMetrics(LineMetrics{Total: 1, Blank: 1})

	assert.Equal(t, int64(2), total.Files)
	assert.Equal(t, int64(4), total.Total)
	assert.Equal(t, int64(2), total.Code)
	assert.Equal(t, int64(1), total.Comment)
	assert.Equal(t, int64(1), total.Blank)
}
