package base64media

import (
	"encoding/base64"
	"regexp"
	"strings"
	"unicode"
)

type MediaCategory string

const (
	CategoryImage MediaCategory = "image"
	CategoryVideo MediaCategory = "video"
	CategoryAudio MediaCategory = "audio"
)

// MediaDescriptor describes a Base64 media payload: a well-formed data URI
// plus the metadata needed to display it or pick a filename.
type MediaDescriptor struct {
	Src       string
	Extension string
	Mime      string
	Category  MediaCategory
}

var dataURIRe = regexp.MustCompile(`^data:([A-Za-z0-9.+-]+)/([A-Za-z0-9.+-]+);base64,`)

// Subtypes whose canonical file extension differs from the MIME subtype.
var extensionAliases = map[string]string{
	"jpeg":    "jpg",
	"svg+xml": "svg",
	"x-icon":  "ico",
	"mpeg":    "mp3",
	"x-m4a":   "m4a",
}

// Sniffing decodes only this many Base64 characters (~24 bytes), enough for
// every signature below including the RIFF format tag at offset 8.
const probeChars = 32

// Classify determines the media format of a Base64 payload. A declared
// data URI header wins over the byte signature; without one the decoded
// header is matched against known magic numbers. It never fails: anything
// unrecognized comes back as image/png.
func Classify(raw string) MediaDescriptor {
	cleaned := stripWhitespace(raw)

	if m := dataURIRe.FindStringSubmatch(cleaned); m != nil {
		category := CategoryImage
		switch m[1] {
		case "video":
			category = CategoryVideo
		case "audio":
			category = CategoryAudio
		}

		return MediaDescriptor{
			Src:       cleaned,
			Extension: normalizeExtension(m[2]),
			Mime:      m[1] + "/" + m[2],
			Category:  category,
		}
	}

	mime, ext, category := sniff(decodeProbe(cleaned), cleaned)

	return MediaDescriptor{
		Src:       "data:" + mime + ";base64," + cleaned,
		Extension: ext,
		Mime:      mime,
		Category:  category,
	}
}

func stripWhitespace(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

func normalizeExtension(subtype string) string {
	if ext, ok := extensionAliases[subtype]; ok {
		return ext
	}
	return strings.ToLower(subtype)
}

// decodeProbe decodes the leading probe window of the payload. Invalid
// Base64 yields an empty header, which matches no signature.
func decodeProbe(payload string) []byte {
	probe := payload
	if len(probe) > probeChars {
		probe = probe[:probeChars]
	}

	header, err := base64.StdEncoding.DecodeString(probe)
	if err != nil {
		return nil
	}

	return header
}

// sniff matches the decoded header against the signature table. The rules
// are ordered: some prefixes are substrings of broader checks (ftypM4A at
// offset 4 must run before the generic ftyp scan), so first match wins and
// the order must not change.
func sniff(header []byte, payload string) (mime, ext string, category MediaCategory) {
	h := string(header)

	switch {
	case strings.HasPrefix(h, "ID3"):
		return "audio/mpeg", "mp3", CategoryAudio
	case matchAt(header, 0, 0xFF, 0xFB):
		return "audio/mpeg", "mp3", CategoryAudio
	case strings.HasPrefix(h, "fLaC"):
		return "audio/flac", "flac", CategoryAudio
	case strings.HasPrefix(h, "OggS"):
		return "audio/ogg", "ogg", CategoryAudio
	case tagAt(h, 4, "ftypM4A"):
		return "audio/mp4", "m4a", CategoryAudio
	case matchAt(header, 0, 0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11):
		return "audio/x-ms-wma", "wma", CategoryAudio
	case strings.HasPrefix(h, "RIFF") && tagAt(h, 8, "WAVE"):
		return "audio/wav", "wav", CategoryAudio
	case strings.HasPrefix(h, "RIFF") && tagAt(h, 8, "AVI "):
		return "video/x-msvideo", "avi", CategoryVideo
	case strings.HasPrefix(h, "RIFF") && tagAt(h, 8, "WEBP"):
		return "image/webp", "webp", CategoryImage
	case strings.Contains(h, "ftyp") && !strings.Contains(h, "M4A"):
		return "video/mp4", "mp4", CategoryVideo
	case matchAt(header, 0, 0x1A, 0x45, 0xDF, 0xA3):
		return "video/webm", "webm", CategoryVideo
	case tagAt(h, 1, "PNG"):
		// Byte 0 is not compared against 0x89. Longstanding behavior,
		// kept so crafted inputs keep classifying the same way.
		return "image/png", "png", CategoryImage
	case matchAt(header, 0, 0xFF, 0xD8, 0xFF):
		return "image/jpeg", "jpg", CategoryImage
	case strings.HasPrefix(h, "GIF8"):
		return "image/gif", "gif", CategoryImage
	case strings.HasPrefix(h, "BM"):
		return "image/bmp", "bmp", CategoryImage
	case matchAt(header, 0, 0x00, 0x00, 0x01, 0x00):
		return "image/x-icon", "ico", CategoryImage
	case looksLikeSVG(h, payload):
		return "image/svg+xml", "svg", CategoryImage
	}

	return "image/png", "png", CategoryImage
}

func matchAt(b []byte, at int, magic ...byte) bool {
	if len(b) < at+len(magic) {
		return false
	}
	for i, m := range magic {
		if b[at+i] != m {
			return false
		}
	}
	return true
}

func tagAt(h string, at int, tag string) bool {
	return len(h) >= at+len(tag) && h[at:at+len(tag)] == tag
}

// looksLikeSVG handles documents whose root <svg> element sits past the
// probe window behind an XML declaration. The full payload is only decoded
// here; when that fails the raw text is searched instead.
func looksLikeSVG(h, payload string) bool {
	if strings.Contains(h, "<svg") {
		return true
	}
	if !strings.Contains(h, "<?xml") {
		return false
	}
	if decoded, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return strings.Contains(string(decoded), "svg")
	}
	return strings.Contains(payload, "svg")
}
