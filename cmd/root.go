package cmd

import (
	base64media "github.com/Ohmlaash/Base64Media/lib"
	"github.com/spf13/cobra"
)

var (
	dryRun bool
	force  bool
)

var rootCmd = &cobra.Command{
	Use:     "Base64Media",
	Short:   "Convert between Base64 text and binary media",
	Long:    `Convert Base64 payloads into image, video or audio files and back, detecting the media format from the byte signature`,
	Version: "1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Performs the actions without writing to the files")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Force update even overwriting existing files")
	rootCmd.PersistentFlags().BoolVar(&base64media.Verbose, "verbose", false, "Show more information")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
