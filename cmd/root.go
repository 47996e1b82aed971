// Package cmd 提供 mdkloc 的命令行入口与子命令编排。
package cmd

import (
	"mdkloc/internal/languages"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
// 注册中心在 scan 执行时才构造，保证 --profiles 叠加能生效。
func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdkloc",
		Short: "多语言代码行统计工具",
		Long: "mdkloc 按语言语法描述逐行统计 code/comment/blank 行数，\n" +
			"支持约 40 种语言、并发扫描、角色拆分与 JSON 导出。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(languages.NewRegistry()))
	rootCmd.AddCommand(newScanCmd())

	return rootCmd
}
