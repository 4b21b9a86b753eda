package base64media

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// DecodedSize returns the byte length a Base64 payload decodes to, without
// decoding it. A data URI header and any whitespace are ignored.
func DecodedSize(b64 string) int {
	payload := stripWhitespace(b64)
	if m := dataURIRe.FindString(payload); m != "" {
		payload = payload[len(m):]
	}
	if payload == "" {
		return 0
	}

	padding := len(payload) - len(strings.TrimRight(payload, "="))

	return len(payload)*3/4 - padding
}

func HumanSize(n int) string {
	return humanize.Bytes(uint64(n))
}

// AspectRatio reduces a width/height pair to its lowest terms, e.g.
// 1920x1080 -> "16:9". Returns "" for non-positive dimensions.
func AspectRatio(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	d := gcd(width, height)

	return fmt.Sprintf("%d:%d", width/d, height/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// FormatDuration renders a duration in seconds as M:SS.
func FormatDuration(seconds float64) string {
	total := int(seconds)

	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
