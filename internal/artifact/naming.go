package artifact

import "regexp"

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// FileName turns a report name into a download file name.
func FileName(name, ext string) string {
	base := unsafeFileChars.ReplaceAllString(name, "_")
	if base == "" {
		base = "report"
	}
	return base + "." + ext
}
