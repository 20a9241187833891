// Package cmd provides CLI commands for the tool version reporter.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolversions/internal/config"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:           "validate",
	Short:         "验证配置文件",
	Long:          "加载并验证配置文件，检查格式与字段取值。",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE:          runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate loads the config file named by --config, which must exist.
func runValidate(cmd *cobra.Command, args []string) error {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ 配置验证失败: %v\n", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ 配置文件验证通过: %s\n", cfgFile)
	return nil
}
