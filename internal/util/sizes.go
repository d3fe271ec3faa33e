package util

import "fmt"

// MaxAttachmentSize is the upload ceiling for a single attachment.
const MaxAttachmentSize = 5 * 1024 * 1024

// FormatFileSize renders a byte count the way the request form shows
// attachment sizes: whole bytes below 1 KB, otherwise two decimals.
func FormatFileSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
	}
}
