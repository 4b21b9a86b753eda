package base64media

import (
	"github.com/fatih/color"
)

var (
	ColorGreen  = color.New(color.FgGreen).SprintFunc()
	ColorRed    = color.New(color.FgRed).SprintFunc()
	ColorYellow = color.New(color.FgYellow).SprintFunc()
)
