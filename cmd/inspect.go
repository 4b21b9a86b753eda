package cmd

import (
	"fmt"
	"log"
	"strings"

	base64media "github.com/Ohmlaash/Base64Media/lib"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file|->",
	Short: "Show what a Base64 payload contains",
	Long:  `Classify Base64 text from a file or stdin and print its media category, MIME type, extension and size without writing anything`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		IExecute(args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func IExecute(source string) {
	raw, err := readSource(source)
	if err != nil {
		log.Fatal(base64media.ColorRed(err))
	}

	if strings.TrimSpace(raw) == "" {
		log.Fatal(base64media.ColorRed("Failed to process Base64 string: empty input"))
	}

	media := base64media.Classify(raw)

	fmt.Printf("Category:  %v\n", media.Category)
	fmt.Printf("MIME:      %v\n", media.Mime)
	fmt.Printf("Extension: %v\n", media.Extension)
	fmt.Printf("Size:      %v\n", base64media.HumanSize(base64media.DecodedSize(media.Src)))

	if media.Category != base64media.CategoryImage {
		return
	}

	data, err := media.Decode()
	if err != nil {
		if base64media.Verbose {
			fmt.Println(base64media.ColorYellow("Payload does not decode, dimensions unavailable"))
		}
		return
	}

	if width, height, err := base64media.ImageSize(data); err == nil {
		fmt.Printf("Pixels:    %vx%v (%v)\n", width, height, base64media.AspectRatio(width, height))
	}
}
