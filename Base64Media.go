package main

import (
	"github.com/Ohmlaash/Base64Media/cmd"
)

func main() {
	cmd.Execute()
}
