// Package cmd 提供 urm 命令行：generate 生成图表，presenters 列出可用输出格式。
package cmd

import (
	"context"

	"github.com/CodMac/go-treesitter-uml/logger"
	"github.com/spf13/cobra"

	// 导入 Java 实现，触发其 init() 注册 Language / Collector / Extractor
	_ "github.com/CodMac/go-treesitter-uml/x/java"
)

var rootCmd = &cobra.Command{
	Use:   "urm",
	Short: "urm - UML class diagrams reverse-engineered from Java sources",
	Long: `urm reads Java sources (or a YAML type manifest), discovers inheritance,
nesting and field-based composition/aggregation relationships, and renders
them as a class diagram.

Examples:
  urm generate -s src/main/java -p com.example        # PlantUML to stdout
  urm generate -s . --presenter mermaid -o docs/      # docs/diagram.mmd
  urm generate -m types.yaml --no-parameter-names
  urm presenters                                      # list output formats`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	rootCmd.AddCommand(PresentersCmd)
}

// ExecuteContext 运行根命令，ctx 取消时正在进行的解析会尽快退出
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
