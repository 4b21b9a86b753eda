package base64media

import (
	"encoding/base64"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var Verbose bool

func FileIsMedia(filename string) bool {
	mtype, err := mimetype.DetectFile(filename)
	if err != nil {
		return false
	}

	return strings.Contains(mtype.String(), "image/") ||
		strings.Contains(mtype.String(), "video/") ||
		strings.Contains(mtype.String(), "audio/")
}

// FileToDataURI encodes a media file into a data URI descriptor. The MIME
// type comes from the file content, then the built URI goes back through
// Classify so both conversion directions share one descriptor shape.
func FileToDataURI(filename string) (MediaDescriptor, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return MediaDescriptor{}, err
	}

	mime := mimetype.Detect(data).String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}

	var encoded strings.Builder
	encoder := base64.NewEncoder(base64.StdEncoding, &encoded)
	if _, err := encoder.Write(data); err != nil {
		return MediaDescriptor{}, err
	}
	if err := encoder.Close(); err != nil {
		return MediaDescriptor{}, err
	}

	return Classify("data:" + mime + ";base64," + encoded.String()), nil
}

// Payload returns the Base64 payload without the data URI header.
func (d MediaDescriptor) Payload() string {
	if m := dataURIRe.FindString(d.Src); m != "" {
		return d.Src[len(m):]
	}
	return d.Src
}

// Decode returns the binary media bytes described by d.
func (d MediaDescriptor) Decode() ([]byte, error) {
	return base64.StdEncoding.DecodeString(d.Payload())
}
