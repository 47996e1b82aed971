package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"mdkloc/internal/config"
	"mdkloc/internal/languages"
	"mdkloc/internal/report"
	"mdkloc/internal/scanner"

	"github.com/spf13/cobra"
)

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	format       string
	output       string
	workers      int
	ignore       []string
	filespec     string
	maxDepth     int
	maxEntries   int
	nonRecursive bool
	roles        bool
	profiles     string
	configFile   string
	progress     bool
	verbose      bool
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	mdkloc scan .
//	mdkloc scan ./project --format json --output result.json
//	mdkloc scan ./legacy --filespec '*.cob' --roles
func newScanCmd() *cobra.Command {
	options := scanOptions{}

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "扫描目录或文件并输出代码度量信息",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, &options); err != nil {
				return err
			}

			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			registry, err := buildRegistry(options.profiles)
			if err != nil {
				return err
			}

			scanOpts := scanner.Options{
				Workers:      options.workers,
				Ignore:       options.ignore,
				Filespec:     options.filespec,
				MaxDepth:     options.maxDepth,
				MaxEntries:   options.maxEntries,
				NonRecursive: options.nonRecursive,
			}
			if options.progress {
				scanOpts.Progress = scanner.NewTracker(cmd.ErrOrStderr())
			}
			if options.verbose {
				scanOpts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			}

			service := scanner.NewService(registry, scanOpts)
			result, err := service.ScanPath(args[0])
			if scanOpts.Progress != nil {
				scanOpts.Progress.Finish()
			}
			if err != nil {
				return err
			}

			switch format {
			case "table":
				return report.PrintTable(cmd.OutOrStdout(), result, options.roles)
			case "json":
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					outputPath = "output.json"
				}
				if err := report.WriteJSONFile(outputPath, result); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", outputPath)
				return nil
			default:
				return errors.New("unsupported format")
			}
		},
	}

	scanCmd.Flags().StringVar(&options.format, "format", "table", "输出格式: table 或 json")
	scanCmd.Flags().StringVar(&options.output, "output", "output.json", "json 导出文件路径")
	scanCmd.Flags().IntVar(&options.workers, "workers", 0, "并发 worker 数量，0 表示取 CPU 数")
	scanCmd.Flags().StringSliceVarP(&options.ignore, "ignore", "i", nil, "追加忽略的目录名，可重复")
	scanCmd.Flags().StringVarP(&options.filespec, "filespec", "f", "", "文件通配符，匹配文件名或相对路径")
	scanCmd.Flags().IntVarP(&options.maxDepth, "max-depth", "d", 100, "目录递归深度上限")
	scanCmd.Flags().IntVarP(&options.maxEntries, "max-entries", "m", 1000000, "文件条目总数上限")
	scanCmd.Flags().BoolVarP(&options.nonRecursive, "non-recursive", "n", false, "只扫描顶层目录")
	scanCmd.Flags().BoolVar(&options.roles, "roles", false, "按 Mainline/Test 角色拆分汇总")
	scanCmd.Flags().StringVar(&options.profiles, "profiles", "", "用户自定义语言描述 YAML 文件")
	scanCmd.Flags().StringVar(&options.configFile, "config", "", "配置文件路径，默认查找 .mdkloc.yaml")
	scanCmd.Flags().BoolVar(&options.progress, "progress", false, "在 stderr 输出扫描进度")
	scanCmd.Flags().BoolVarP(&options.verbose, "verbose", "v", false, "输出逐文件诊断日志")

	return scanCmd
}

// applyConfig 用配置文件补齐未在命令行显式给出的选项。
// 优先级：flag > 配置文件 > 内置默认值。
func applyConfig(cmd *cobra.Command, options *scanOptions) error {
	var cfg *config.Config
	var err error
	if options.configFile != "" {
		cfg, err = config.LoadFile(options.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("format") {
		options.format = cfg.Format
	}
	if !flags.Changed("output") {
		options.output = cfg.Output
	}
	if !flags.Changed("workers") {
		options.workers = cfg.Workers
	}
	if !flags.Changed("filespec") {
		options.filespec = cfg.Filespec
	}
	if !flags.Changed("max-depth") {
		options.maxDepth = cfg.MaxDepth
	}
	if !flags.Changed("max-entries") {
		options.maxEntries = cfg.MaxEntries
	}
	if !flags.Changed("non-recursive") {
		options.nonRecursive = cfg.NonRecursive
	}
	if !flags.Changed("roles") {
		options.roles = cfg.Roles
	}
	if !flags.Changed("profiles") {
		options.profiles = cfg.Profiles
	}
	// 忽略目录做合并而不是覆盖，两边的条目都保留。
	options.ignore = append(options.ignore, cfg.Ignore...)

	return nil
}

// buildRegistry 构造语言注册中心，必要时叠加用户自定义描述。
func buildRegistry(profilesPath string) (*languages.Registry, error) {
	if profilesPath == "" {
		return languages.NewRegistry(), nil
	}

	if _, err := os.Stat(profilesPath); err != nil {
		return nil, fmt.Errorf("profiles file: %w", err)
	}
	extra, err := languages.LoadProfiles(profilesPath)
	if err != nil {
		return nil, err
	}
	return languages.NewRegistryWithProfiles(extra), nil
}
