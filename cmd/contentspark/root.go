package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	palettePath string
	locale      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "contentspark",
		Short:         "ContentSpark generates Vietnamese social posts, quotes and illustrated text with AI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "config.yaml", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.palettePath, "palette", "palette.yaml", "Path to accent palette file")
	cmd.PersistentFlags().StringVar(&flags.locale, "locale", "", "Message locale (vi or en); overrides the config")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newTrendsCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newAPIKeyCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
