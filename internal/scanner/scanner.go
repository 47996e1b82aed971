// Package scanner 提供并发扫描调度能力。
// 该层负责目录遍历、过滤、任务分发、并发执行和结果聚合，
// 不负责语法解析细节；逐行分类完全委托给 counter 包。
package scanner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"mdkloc/internal/counter"
	"mdkloc/internal/languages"
	"mdkloc/internal/model"
)

// defaultIgnoredDirs 是默认跳过的目录名（构建产物与依赖缓存）。
var defaultIgnoredDirs = map[string]bool{
	"target":       true,
	"node_modules": true,
	"build":        true,
	"dist":         true,
	".git":         true,
	"venv":         true,
	"__pycache__":  true,
	"bin":          true,
	"obj":          true,
}

// Options 存放一次扫描的可配置参数。
type Options struct {
	// Workers 是并发 worker 数量，<=0 时取 CPU 数。
	Workers int
	// Ignore 是用户追加的忽略目录名。
	Ignore []string
	// Filespec 是可选的文件通配符，匹配文件名或相对路径。
	Filespec string
	// MaxDepth 是目录递归深度上限，<=0 时取默认值 100。
	MaxDepth int
	// MaxEntries 是文件条目总数上限，<=0 时取默认值 1000000。
	MaxEntries int
	// NonRecursive 为真时只扫描顶层目录。
	NonRecursive bool
	// Progress 非空时开启进度汇报。
	Progress *Tracker
	// Logger 用于 verbose 诊断输出，nil 时丢弃。
	Logger *slog.Logger
}

// Service 是扫描服务对象。
type Service struct {
	registry *languages.Registry
	options  Options
	ignored  map[string]bool
	logger   *slog.Logger
}

// scanTask 表示一个待分析文件任务。
type scanTask struct {
	absolutePath string
	displayPath  string
	language     string
}

// workerResult 表示 worker 的执行产物。
type workerResult struct {
	fileMetrics *model.FileMetrics
	scanError   *model.ScanError
}

// errTooManyEntries 在目录树超过条目上限时中止遍历。
var errTooManyEntries = errors.New("too many entries in directory tree")

// NewService 创建扫描服务。
func NewService(registry *languages.Registry, options Options) *Service {
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}
	if options.MaxDepth <= 0 {
		options.MaxDepth = 100
	}
	if options.MaxEntries <= 0 {
		options.MaxEntries = 1000000
	}

	ignored := make(map[string]bool, len(defaultIgnoredDirs)+len(options.Ignore))
	for name := range defaultIgnoredDirs {
		ignored[name] = true
	}
	for _, name := range options.Ignore {
		ignored[name] = true
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{
		registry: registry,
		options:  options,
		ignored:  ignored,
		logger:   logger,
	}
}

// ScanPath 扫描目录或单文件。
// 扫描过程默认并发执行，单文件解析过程采用流式读取。
// 单个文件的读取失败只会进入错误清单，整个扫描始终会完成。
func (s *Service) ScanPath(targetPath string) (model.ScanResult, error) {
	var result model.ScanResult

	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return result, errors.New("scan path is empty")
	}

	if s.options.Filespec != "" {
		if _, err := path.Match(s.options.Filespec, "probe"); err != nil {
			return result, fmt.Errorf("invalid filespec pattern %q: %w", s.options.Filespec, err)
		}
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return result, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return result, fmt.Errorf("stat path: %w", err)
	}

	result.ScannedPath = absoluteTarget

	tasks := make(chan scanTask, s.options.Workers*4)
	results := make(chan workerResult, s.options.Workers*4)
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.options.Workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results)
		}()
	}

	go func() {
		defer close(tasks)
		if info.IsDir() {
			walkErrChan <- s.enqueueDirectoryTasks(absoluteTarget, tasks, results)
			return
		}
		walkErrChan <- s.enqueueSingleFileTask(absoluteTarget, tasks)
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	result.Files = make([]model.FileMetrics, 0)
	result.Errors = make([]model.ScanError, 0)

	for item := range results {
		if item.fileMetrics != nil {
			result.Files = append(result.Files, *item.fileMetrics)
		}
		if item.scanError != nil {
			result.Errors = append(result.Errors, *item.scanError)
		}
	}

	if walkErr := <-walkErrChan; walkErr != nil {
		return result, walkErr
	}

	s.buildSummaries(&result)
	return result, nil
}

// enqueueDirectoryTasks 遍历目录并把可识别语言文件推入任务队列。
// 遍历中的目录级错误记入结果但不中断；条目超限会中止整个扫描。
func (s *Service) enqueueDirectoryTasks(root string, tasks chan<- scanTask, results chan<- workerResult) error {
	entries := 0

	walkErr := filepath.WalkDir(root, func(currentPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("walk error", "path", currentPath, "error", err)
			results <- workerResult{scanError: &model.ScanError{
				Path:  s.displayPath(root, currentPath),
				Error: err.Error(),
			}}
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if currentPath == root {
				return nil
			}
			if s.ignored[entry.Name()] {
				s.logger.Debug("skip ignored directory", "path", currentPath)
				return fs.SkipDir
			}
			if s.options.NonRecursive || s.pathDepth(root, currentPath) > s.options.MaxDepth {
				return fs.SkipDir
			}
			return nil
		}

		// WalkDir 不跟随符号链接，这里再排除链接文件本身。
		if entry.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		profile, ok := s.registry.ProfileForFile(currentPath)
		if !ok {
			return nil
		}

		displayPath := s.displayPath(root, currentPath)
		if !s.matchesFilespec(entry.Name(), displayPath) {
			return nil
		}

		entries++
		if entries > s.options.MaxEntries {
			return errTooManyEntries
		}

		tasks <- scanTask{
			absolutePath: currentPath,
			displayPath:  displayPath,
			language:     profile.Name,
		}
		return nil
	})

	if errors.Is(walkErr, errTooManyEntries) {
		return fmt.Errorf("scan aborted: %w", errTooManyEntries)
	}
	return walkErr
}

// enqueueSingleFileTask 在用户给定单文件路径时创建任务。
func (s *Service) enqueueSingleFileTask(filePath string, tasks chan<- scanTask) error {
	profile, ok := s.registry.ProfileForFile(filePath)
	if !ok {
		return fmt.Errorf("unsupported file extension: %s", filepath.Ext(filePath))
	}

	tasks <- scanTask{
		absolutePath: filePath,
		displayPath:  filepath.Base(filePath),
		language:     profile.Name,
	}
	return nil
}

// displayPath 生成结果中展示用的相对路径（统一为斜杠分隔）。
func (s *Service) displayPath(root string, currentPath string) string {
	relativePath, err := filepath.Rel(root, currentPath)
	if err != nil {
		relativePath = currentPath
	}
	return filepath.ToSlash(relativePath)
}

// pathDepth 计算路径相对根目录的层级数。
func (s *Service) pathDepth(root string, currentPath string) int {
	relativePath, err := filepath.Rel(root, currentPath)
	if err != nil || relativePath == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(relativePath), "/") + 1
}

// matchesFilespec 按文件名或相对路径匹配通配符。
func (s *Service) matchesFilespec(baseName string, displayPath string) bool {
	pattern := s.options.Filespec
	if pattern == "" {
		return true
	}
	if ok, _ := path.Match(pattern, baseName); ok {
		return true
	}
	ok, _ := path.Match(pattern, displayPath)
	return ok
}

// runWorker 执行真实的文件读取和逐行分类。
// 语言标识到 Profile 的二次查找走注册中心契约：
// 未注册标识只让当前文件失败，不影响其他任务。
func (s *Service) runWorker(tasks <-chan scanTask, results chan<- workerResult) {
	for task := range tasks {
		profile, err := s.registry.Profile(task.language)
		if err != nil {
			results <- workerResult{scanError: &model.ScanError{
				Path:  task.displayPath,
				Error: err.Error(),
			}}
			continue
		}

		metrics, err := counter.AnalyzeFile(task.absolutePath, profile)
		if err != nil {
			s.logger.Warn("analyze failed", "path", task.displayPath, "error", err)
			results <- workerResult{scanError: &model.ScanError{
				Path:  task.displayPath,
				Error: err.Error(),
			}}
			continue
		}

		if s.options.Progress != nil {
			s.options.Progress.Update(1, metrics.Total)
		}
		s.logger.Debug("analyzed",
			"path", task.displayPath,
			"language", task.language,
			"code", metrics.Code,
			"comment", metrics.Comment,
			"blank", metrics.Blank,
		)

		results <- workerResult{
			fileMetrics: &model.FileMetrics{
				Path:     task.displayPath,
				Language: task.language,
				Role:     model.RoleForPath(task.displayPath),
				Metrics:  metrics,
			},
		}
	}
}

// buildSummaries 计算语言级汇总（含角色拆分）和总计信息。
func (s *Service) buildSummaries(result *model.ScanResult) {
	sort.Slice(result.Files, func(i int, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	sort.Slice(result.Errors, func(i int, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})

	byLanguage := make(map[string]*model.LanguageMetrics)
	result.Total = model.TotalMetrics{}

	for _, item := range result.Files {
		result.Total.AddFileMetrics(item.Metrics)

		summary, ok := byLanguage[item.Language]
		if !ok {
			summary = &model.LanguageMetrics{
				Language:   item.Language,
				Extensions: s.registry.ExtensionsForLanguage(item.Language),
			}
			byLanguage[item.Language] = summary
		}

		summary.AddFile(item.Role, item.Metrics)
	}

	result.Languages = make([]model.LanguageMetrics, 0, len(byLanguage))
	for _, item := range byLanguage {
		result.Languages = append(result.Languages, *item)
	}

	sort.Slice(result.Languages, func(i int, j int) bool {
		return result.Languages[i].Language < result.Languages[j].Language
	})
}
