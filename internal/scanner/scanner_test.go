package scanner

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mdkloc/internal/languages"
	"mdkloc/internal/model"
)

// writeFixtureFile 是测试辅助函数，用于在临时目录快速落地测试文件。
func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture file failed: %v", err)
	}
}

// TestScanSingleFile 验证 scan 支持“直接传单文件路径”。
func TestScanSingleFile(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "single.go")

	writeFixtureFile(t, filePath, strings.Join([]string{
		"package main",
		"// top comment",
		"func main() { x := 1 // inline }",
	}, "\n"))

	service := NewService(languages.NewRegistry(), Options{Workers: 2})
	result, err := service.ScanPath(filePath)
	if err != nil {
		t.Fatalf("scan single file failed: %v", err)
	}

	if len(result.Files) != 1 {
		t.Fatalf("expected 1 scanned file, got %d", len(result.Files))
	}
	if result.Total.Files != 1 {
		t.Fatalf("expected total.files=1, got %d", result.Total.Files)
	}
	// 含注释的代码行只计一次 Code，不会重复进入 Comment。
	if result.Total.Total != 3 || result.Total.Code != 2 || result.Total.Comment != 1 || result.Total.Blank != 0 {
		t.Fatalf("unexpected total metrics: %+v", result.Total)
	}

	fileMetrics := result.Files[0]
	if fileMetrics.Path != "single.go" {
		t.Fatalf("expected display path single.go, got %s", fileMetrics.Path)
	}
	if fileMetrics.Language != "Go" {
		t.Fatalf("expected language Go, got %s", fileMetrics.Language)
	}
	if fileMetrics.Role != model.RoleMainline {
		t.Fatalf("expected mainline role, got %s", fileMetrics.Role)
	}
}

// TestScanDirectoryTotalFiles 验证目录扫描时 total.files 与文件数一致。
func TestScanDirectoryTotalFiles(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), strings.Join([]string{
		"package main",
		"func main() {}",
	}, "\n"))
	writeFixtureFile(t, filepath.Join(tempDir, "web", "app.js"), strings.Join([]string{
		"const x = 1; // js comment",
	}, "\n"))
	writeFixtureFile(t, filepath.Join(tempDir, "README.txt"), "not a source file")

	service := NewService(languages.NewRegistry(), Options{Workers: 4})
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan directory failed: %v", err)
	}

	if len(result.Files) != 2 {
		t.Fatalf("expected 2 scanned files, got %d", len(result.Files))
	}
	if result.Total.Files != 2 {
		t.Fatalf("expected total.files=2, got %d", result.Total.Files)
	}
	if len(result.Languages) != 2 {
		t.Fatalf("expected 2 language summaries, got %d", len(result.Languages))
	}
	// 语言汇总按名称排序。
	if result.Languages[0].Language != "Go" || result.Languages[1].Language != "JavaScript" {
		t.Fatalf("unexpected language order: %s, %s", result.Languages[0].Language, result.Languages[1].Language)
	}
	// 文件明细按展示路径排序，路径统一斜杠分隔。
	if result.Files[0].Path != "main.go" || result.Files[1].Path != "web/app.js" {
		t.Fatalf("unexpected file order: %s, %s", result.Files[0].Path, result.Files[1].Path)
	}
}

// TestScanUnsupportedSingleFile 验证单文件模式下不支持后缀会返回错误。
func TestScanUnsupportedSingleFile(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "demo.txt")
	writeFixtureFile(t, filePath, "plain text")

	service := NewService(languages.NewRegistry(), Options{Workers: 1})
	_, err := service.ScanPath(filePath)
	if err == nil {
		t.Fatalf("expected unsupported extension error, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported file extension") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestScanEmptyPath 验证空路径直接报错。
func TestScanEmptyPath(t *testing.T) {
	service := NewService(languages.NewRegistry(), Options{Workers: 1})
	if _, err := service.ScanPath("   "); err == nil {
		t.Fatalf("expected empty path error, got nil")
	}
}

// TestScanIgnoredDirectories 验证默认忽略目录与用户追加目录都被跳过。
func TestScanIgnoredDirectories(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, "node_modules", "dep.js"), "const x = 1;\n")
	writeFixtureFile(t, filepath.Join(tempDir, "target", "out.rs"), "fn main() {}\n")
	writeFixtureFile(t, filepath.Join(tempDir, "vendor", "lib.go"), "package lib\n")

	service := NewService(languages.NewRegistry(), Options{
		Workers: 2,
		Ignore:  []string{"vendor"},
	})
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan directory failed: %v", err)
	}

	if len(result.Files) != 1 {
		t.Fatalf("expected 1 scanned file, got %d", len(result.Files))
	}
	if result.Files[0].Path != "main.go" {
		t.Fatalf("expected only main.go, got %s", result.Files[0].Path)
	}
}

// TestScanFilespec 验证通配符同时支持文件名与相对路径两种匹配。
func TestScanFilespec(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, "util.py"), "x = 1\n")
	writeFixtureFile(t, filepath.Join(tempDir, "web", "app.go"), "package web\n")

	byName := NewService(languages.NewRegistry(), Options{Workers: 2, Filespec: "*.go"})
	result, err := byName.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan with filespec failed: %v", err)
	}
	if len(result.Files) != 2 {
		t.Fatalf("expected 2 matched files, got %d", len(result.Files))
	}

	byPath := NewService(languages.NewRegistry(), Options{Workers: 2, Filespec: "web/*.go"})
	result, err = byPath.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan with path filespec failed: %v", err)
	}
	if len(result.Files) != 1 || result.Files[0].Path != "web/app.go" {
		t.Fatalf("expected only web/app.go, got %+v", result.Files)
	}
}

// TestScanInvalidFilespec 验证非法通配符在遍历前被拒绝。
func TestScanInvalidFilespec(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n")

	service := NewService(languages.NewRegistry(), Options{Workers: 1, Filespec: "[unclosed"})
	if _, err := service.ScanPath(tempDir); err == nil {
		t.Fatalf("expected invalid filespec error, got nil")
	}
}

// TestScanNonRecursive 验证非递归模式只统计顶层文件。
func TestScanNonRecursive(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, "sub", "deep.go"), "package sub\n")

	service := NewService(languages.NewRegistry(), Options{Workers: 2, NonRecursive: true})
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("non-recursive scan failed: %v", err)
	}

	if len(result.Files) != 1 || result.Files[0].Path != "main.go" {
		t.Fatalf("expected only main.go, got %+v", result.Files)
	}
}

// TestScanMaxDepth 验证超出深度上限的子目录被整体跳过。
func TestScanMaxDepth(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "top.go"), "package top\n")
	writeFixtureFile(t, filepath.Join(tempDir, "a", "mid.go"), "package a\n")
	writeFixtureFile(t, filepath.Join(tempDir, "a", "b", "deep.go"), "package b\n")

	service := NewService(languages.NewRegistry(), Options{Workers: 2, MaxDepth: 1})
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("depth-limited scan failed: %v", err)
	}

	if len(result.Files) != 2 {
		t.Fatalf("expected 2 files within depth 1, got %d", len(result.Files))
	}
	for _, item := range result.Files {
		if strings.Contains(item.Path, "a/b/") {
			t.Fatalf("deep file should be skipped: %s", item.Path)
		}
	}
}

// TestScanMaxEntries 验证条目超限会中止扫描并返回错误。
func TestScanMaxEntries(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "one.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, "two.go"), "package main\n")
	writeFixtureFile(t, filepath.Join(tempDir, "three.go"), "package main\n")

	service := NewService(languages.NewRegistry(), Options{Workers: 1, MaxEntries: 2})
	_, err := service.ScanPath(tempDir)
	if err == nil {
		t.Fatalf("expected max entries error, got nil")
	}
	if !strings.Contains(err.Error(), "too many entries") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestScanFailedFileIsolation 验证单文件读取失败只进入错误清单：
// 文件不计入明细与汇总，整个扫描仍正常完成。
func TestScanFailedFileIsolation(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "good.go"), "package main\nfunc main() {}\n")

	// 带可识别后缀的套接字文件：遍历会把它当普通文件入队，打开时必然失败。
	listener, err := net.Listen("unix", filepath.Join(tempDir, "sock.go"))
	if err != nil {
		t.Skipf("cannot create unix socket fixture: %v", err)
	}
	defer listener.Close()

	service := NewService(languages.NewRegistry(), Options{Workers: 2})
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan should complete despite the unreadable file: %v", err)
	}

	if len(result.Files) != 1 || result.Files[0].Path != "good.go" {
		t.Fatalf("only good.go should be counted, got %+v", result.Files)
	}
	if result.Total.Files != 1 || result.Total.Total != 2 {
		t.Fatalf("aggregates must exclude the failed file: %+v", result.Total)
	}
	if len(result.Errors) != 1 || result.Errors[0].Path != "sock.go" {
		t.Fatalf("expected one scan error for sock.go, got %+v", result.Errors)
	}
	if result.Errors[0].Error == "" {
		t.Fatalf("scan error should carry the underlying message")
	}
}

// TestScanRoleBreakdown 验证主线/测试角色在文件级和语言级都正确拆分。
func TestScanRoleBreakdown(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "server.go"), strings.Join([]string{
		"package main",
		"func run() {}",
	}, "\n"))
	writeFixtureFile(t, filepath.Join(tempDir, "server_test.go"), strings.Join([]string{
		"package main",
		"func TestRun(t *testing.T) {}",
	}, "\n"))
	writeFixtureFile(t, filepath.Join(tempDir, "tests", "helper.py"), "x = 1\n")

	service := NewService(languages.NewRegistry(), Options{Workers: 2})
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan directory failed: %v", err)
	}

	roleByPath := make(map[string]model.Role)
	for _, item := range result.Files {
		roleByPath[item.Path] = item.Role
	}
	if roleByPath["server.go"] != model.RoleMainline {
		t.Fatalf("server.go should be mainline, got %s", roleByPath["server.go"])
	}
	if roleByPath["server_test.go"] != model.RoleTest {
		t.Fatalf("server_test.go should be test, got %s", roleByPath["server_test.go"])
	}
	if roleByPath["tests/helper.py"] != model.RoleTest {
		t.Fatalf("tests/helper.py should be test, got %s", roleByPath["tests/helper.py"])
	}

	var goSummary *model.LanguageMetrics
	for i := range result.Languages {
		if result.Languages[i].Language == "Go" {
			goSummary = &result.Languages[i]
		}
	}
	if goSummary == nil {
		t.Fatalf("missing Go language summary")
	}
	if goSummary.Roles[model.RoleMainline.String()].Files != 1 {
		t.Fatalf("expected 1 mainline Go file, got %d", goSummary.Roles[model.RoleMainline.String()].Files)
	}
	if goSummary.Roles[model.RoleTest.String()].Files != 1 {
		t.Fatalf("expected 1 test Go file, got %d", goSummary.Roles[model.RoleTest.String()].Files)
	}
}

// TestScanProgressTracker 验证进度统计累计的文件数与行数。
func TestScanProgressTracker(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "one.go"), "package main\nfunc a() {}\n")
	writeFixtureFile(t, filepath.Join(tempDir, "two.go"), "package main\n")

	tracker := NewTracker(io.Discard)
	service := NewService(languages.NewRegistry(), Options{Workers: 2, Progress: tracker})
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan with progress failed: %v", err)
	}
	tracker.Finish()

	if tracker.Files() != result.Total.Files {
		t.Fatalf("tracker files=%d, total files=%d", tracker.Files(), result.Total.Files)
	}
	if tracker.Lines() != result.Total.Total {
		t.Fatalf("tracker lines=%d, total lines=%d", tracker.Lines(), result.Total.Total)
	}
}

// TestScanSumInvariant 验证扫描聚合后仍满足 Code+Comment+Blank==Total。
func TestScanSumInvariant(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "main.go"), strings.Join([]string{
		"package main",
		"",
		"// entry point",
		"func main() {",
		"\tprintln(\"// not a comment\")",
		"}",
	}, "\n"))
	writeFixtureFile(t, filepath.Join(tempDir, "script.py"), strings.Join([]string{
		"#!/usr/bin/env python3",
		"# helper",
		"x = 1",
	}, "\n"))

	service := NewService(languages.NewRegistry(), Options{Workers: 2})
	result, err := service.ScanPath(tempDir)
	if err != nil {
		t.Fatalf("scan directory failed: %v", err)
	}

	total := result.Total
	if total.Code+total.Comment+total.Blank != total.Total {
		t.Fatalf("sum invariant broken: %+v", total)
	}
	for _, item := range result.Files {
		m := item.Metrics
		if m.Code+m.Comment+m.Blank != m.Total {
			t.Fatalf("sum invariant broken for %s: %+v", item.Path, m)
		}
	}
}
