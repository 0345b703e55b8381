package cmd

import (
	"fmt"
	"os"

	"post-receptor/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "post-receptor",
	Short: "Post Receptor Service",
	Long: `Post Receptor receives blog posts pushed by a sending site, translates
them with OpenAI and stores them with their taxonomy, author and featured image.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config gives readable timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
