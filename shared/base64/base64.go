package base64

import "strings"

// GetContentType extracts the mime type from a base64 data URI, e.g.
// "data:image/png;base64,...." yields "image/png".
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// StripPrefix removes the data URI prefix, returning only the encoded payload.
func StripPrefix(file string) string {
	idx := strings.Index(file, ";base64,")
	if idx == -1 {
		return file
	}

	return file[idx+len(";base64,"):]
}
