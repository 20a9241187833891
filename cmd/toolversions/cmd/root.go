// Package cmd provides CLI commands for the tool version reporter.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"toolversions/internal/config"
	"toolversions/internal/report"
	"toolversions/internal/report/text"
	"toolversions/internal/service"
)

// Version information, injected at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const defaultConfigFile = "toolversions.yaml"

// Global flags
var (
	cfgFile  string // Config file path
	logLevel string // Log level
)

// Constructors used by the root command, replaced in tests.
var (
	newRunner = func() service.CommandRunner {
		return service.NewExecRunner()
	}
	newWriter = func() report.Writer {
		return text.NewWriter()
	}
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "toolversions",
	Short: "工具版本诊断 - 输出本机运行时、构建工具与平台版本",
	Long: `依次输出当前运行时版本、已安装工具（buildbot、darcs）的版本信息，
最后输出主机平台描述。未安装的工具将被静默跳过。

示例:
  toolversions
  toolversions --log-level debug`,
	Version:      Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runReport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile, "配置文件路径")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "日志级别 (debug, info, warn, error)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// runReport probes the local tools and prints the report to stdout.
func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	logger := setupLogger(cmd.ErrOrStderr(), level, cfg.Logging.Format)
	logger.Debug().
		Str("config_path", cfgFile).
		Str("log_level", level).
		Msg("configuration loaded")

	reporter := service.NewReporter(newRunner(), logger)
	result, err := reporter.Run(cmd.Context())
	if err != nil {
		return err
	}

	writer := newWriter()
	logger.Debug().Str("format", writer.Format()).Msg("writing report")
	return writer.Write(cmd.OutOrStdout(), result)
}

// loadConfig reads the config file. The default path is optional; an explicit
// --config must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadOptional(cfgFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// GetVersionInfo returns formatted version information.
func GetVersionInfo() string {
	return Version + "\n" +
		"Build Time: " + BuildTime + "\n" +
		"Git Commit: " + GitCommit + "\n" +
		"Go Version: " + runtime.Version() + "\n" +
		"OS/Arch: " + runtime.GOOS + "/" + runtime.GOARCH
}
