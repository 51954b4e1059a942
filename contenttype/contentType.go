// Package contenttype picks the Content-Type header for an upload.
package contenttype

import "strings"

const (
	// Default is used when the file name has no extension.
	Default = "image/jpeg"
	// PDF is the type for .pdf files.
	PDF = "application/pdf"
	// Fallback is used for any extension that is not an image or a pdf.
	Fallback = "application/*"
)

// Infer returns explicit unchanged when it is set. Otherwise the type is derived from the text
// after the last dot of fileName. A name without any dot is Default.
func Infer(fileName, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if !strings.Contains(fileName, ".") {
		return Default
	}

	ext := Extension(fileName)
	switch ext {
	case "png", "jpg", "jpeg":
		return "image/" + ext
	case "pdf":
		return PDF
	default:
		return Fallback
	}
}

// Extension returns the lower-cased text after the last dot of fileName, without the dot. It is
// empty when there is no dot or nothing follows it.
func Extension(fileName string) string {
	i := strings.LastIndex(fileName, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(fileName[i+1:])
}
