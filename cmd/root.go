package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yuanwutong/portfolio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Bilingual portfolio site served from markdown content",
	Long: `Portfolio serves a single-page personal site built from a directory of
markdown and list files: an overview, a project carousel with a timeline,
a blog and a research section, switchable between Chinese and English.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
