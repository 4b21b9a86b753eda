package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	base64media "github.com/Ohmlaash/Base64Media/lib"
	"github.com/karrick/godirwalk"
	"github.com/spf13/cobra"
)

var (
	encodeOutput string
	rawPayload   bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <file|dir>",
	Short: "Encode media files into Base64 data URIs",
	Long:  `Convert a media file, or every media file under a directory, into data URI text stored next to the source`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		EExecute(args[0])
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Write the Base64 text to this path (single file only)")
	encodeCmd.Flags().BoolVar(&rawPayload, "raw", false, "Emit the bare Base64 payload without the data: header")
	rootCmd.AddCommand(encodeCmd)
}

func EExecute(path string) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		log.Fatal(base64media.ColorRed("No open media path"))
	}

	if !fileInfo.IsDir() {
		if !base64media.FileIsMedia(path) {
			log.Fatal(base64media.ColorRed("Not a media file"))
		}
		if err := encodeFile(path, encodeOutput); err != nil {
			log.Fatal(base64media.ColorRed(err))
		}
		return
	}

	err = godirwalk.Walk(path, &godirwalk.Options{
		Callback: func(sub string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil // do not remove directory that was provided top-level directory
			}

			if !base64media.FileIsMedia(sub) {
				return nil
			}

			relPath, err := filepath.Rel(path, sub)
			if err != nil {
				return err
			}
			fmt.Printf("[%v] - ", relPath)

			if err := encodeFile(sub, ""); err != nil {
				fmt.Println(base64media.ColorRed(err))
				return nil
			}

			return nil
		},
		Unsorted: false,
	})
	if err != nil {
		fmt.Println(err)
	}
}

func encodeFile(path string, target string) error {
	media, err := base64media.FileToDataURI(path)
	if err != nil {
		return err
	}

	text := media.Src
	if rawPayload {
		text = media.Payload()
	}

	fmt.Printf("%v %v (%v) ", media.Category, media.Mime, base64media.HumanSize(base64media.DecodedSize(media.Src)))

	if target == "" {
		target = path + ".b64.txt"
	}

	if !force {
		if _, err := os.Stat(target); err == nil {
			fmt.Println(base64media.ColorYellow("(no update)"))
			return nil
		}
	}

	fmt.Println(base64media.ColorGreen("(writing)"))

	if dryRun {
		return nil
	}

	return os.WriteFile(target, []byte(text), 0o644)
}
