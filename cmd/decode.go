package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	base64media "github.com/Ohmlaash/Base64Media/lib"
	"github.com/spf13/cobra"
)

var decodeOutput string

var decodeCmd = &cobra.Command{
	Use:   "decode <file|->",
	Short: "Decode Base64 text into a media file",
	Long:  `Read Base64 text from a file or stdin, detect the media format from the byte signature and write the binary file with the proper extension`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		DExecute(args[0])
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "Write the decoded file to this path")
	rootCmd.AddCommand(decodeCmd)
}

func DExecute(source string) {
	raw, err := readSource(source)
	if err != nil {
		log.Fatal(base64media.ColorRed(err))
	}

	if strings.TrimSpace(raw) == "" {
		log.Fatal(base64media.ColorRed("Failed to process Base64 string: empty input"))
	}

	media := base64media.Classify(raw)

	data, err := media.Decode()
	if err != nil {
		log.Fatal(base64media.ColorRed(fmt.Sprintf("Failed to process Base64 string: %v", err)))
	}

	fmt.Printf("%v %v (%v) ", media.Category, media.Mime, base64media.HumanSize(len(data)))

	target := decodeOutput
	if target == "" {
		target = outputName(source, media.Extension)
	}

	if !force {
		if _, err := os.Stat(target); err == nil {
			fmt.Println(base64media.ColorYellow("(no update)"))
			return
		}
	}

	fmt.Println(base64media.ColorGreen(target))

	if dryRun {
		return
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		log.Fatal(base64media.ColorRed(err))
	}
}

func readSource(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}

	data, err := os.ReadFile(source)
	return string(data), err
}

func outputName(source, ext string) string {
	if source == "-" {
		return "output." + ext
	}

	return strings.TrimSuffix(source, filepath.Ext(source)) + "." + ext
}
